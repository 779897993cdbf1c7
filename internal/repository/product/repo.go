package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/keepsafe/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

const (
	createQuery = `
		INSERT INTO products (name, category, expiration_date, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	getByIDQuery = `
		SELECT id, name, category, expiration_date, image, created_at
		FROM products
		WHERE id = $1;
	`

	updateQuery = `
		UPDATE products
		SET name = $1, category = $2, expiration_date = $3, image = $4
		WHERE id = $5;
	`

	deleteQuery = `
		DELETE FROM products
		WHERE id = $1;
	`

	lockQuery = `
		SELECT pg_advisory_xact_lock(hashtext('keepsafe.products'));
	`

	countQuery = `
		SELECT COUNT(*) FROM products;
	`

	listQuery = `
		SELECT id, name, category, expiration_date, image, created_at
		FROM products
		WHERE strpos(lower(name), lower($1)) > 0
	`
)

// orderClauses maps a sort preference to its ORDER BY clause.
var orderClauses = map[string]string{
	model.SortByExpiration: "ORDER BY expiration_date ASC, name ASC;",
	model.SortByName:       "ORDER BY lower(name) ASC, expiration_date ASC;",
	model.SortByCreated:    "ORDER BY created_at DESC;",
}

// ListQuery returns the full list query for the given sort preference.
// Unknown preferences sort by expiration date.
func ListQuery(sort string) string {
	order, ok := orderClauses[sort]
	if !ok {
		order = orderClauses[model.SortByExpiration]
	}

	return listQuery + "\t\t" + order
}

// Repository provides methods to interact with the products table.
type Repository struct {
	db  *dbpg.DB
	loc *time.Location // zone expiration dates are returned in
}

// NewRepository creates a new product repository. Expiration dates read back
// from the database are converted to loc; nil means UTC.
func NewRepository(db *dbpg.DB, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.UTC
	}

	return &Repository{db: db, loc: loc}
}

// Create inserts p if allow accepts the number of products already stored.
// The count and the insert run in one transaction holding an advisory lock,
// so concurrent creates are checked one after another. An error from allow is
// returned unwrapped.
func (r *Repository) Create(ctx context.Context, p model.Product, allow func(current int) error) (model.Product, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, lockQuery); err != nil {
		return model.Product{}, fmt.Errorf("failed to lock products: %w", err)
	}

	var n int
	if err := tx.QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		return model.Product{}, fmt.Errorf("failed to count products: %w", err)
	}

	if allow != nil {
		if err := allow(n); err != nil {
			return model.Product{}, err
		}
	}

	err = tx.QueryRowContext(
		ctx, createQuery, p.Name, p.Category, p.ExpirationDate, p.Image,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Product{}, fmt.Errorf("failed to commit product: %w", err)
	}

	return p, nil
}

// GetByID returns the product with the given ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	var p model.Product

	err := r.db.Master.QueryRowContext(ctx, getByIDQuery, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.ExpirationDate, &p.Image, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Product{}, ErrProductNotFound
		}

		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	p.ExpirationDate = p.ExpirationDate.In(r.loc)

	return p, nil
}

// Update overwrites the mutable fields of a product. CreatedAt never changes.
func (r *Repository) Update(ctx context.Context, p model.Product) error {
	res, err := r.db.ExecContext(ctx, updateQuery, p.Name, p.Category, p.ExpirationDate, p.Image, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrProductNotFound
	}

	return nil
}

// List returns products whose name contains search, case-insensitively and
// without wildcards, ordered by the given sort preference. An empty search
// matches everything.
func (r *Repository) List(ctx context.Context, search, sort string) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, ListQuery(sort), search)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.ExpirationDate, &p.Image, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.ExpirationDate = p.ExpirationDate.In(r.loc)

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}
