package shopping

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/keepsafe/internal/model"
)

var ErrItemNotFound = errors.New("shopping item not found")

const (
	createQuery = `
		INSERT INTO shopping_items (name, quantity, category, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_completed, created_at;
	`

	toggleQuery = `
		UPDATE shopping_items
		SET is_completed = NOT is_completed
		WHERE id = $1
		RETURNING id, name, quantity, category, notes, is_completed, created_at;
	`

	deleteQuery = `
		DELETE FROM shopping_items
		WHERE id = $1;
	`

	lockQuery = `
		SELECT pg_advisory_xact_lock(hashtext('keepsafe.shopping_items'));
	`

	countQuery = `
		SELECT COUNT(*) FROM shopping_items;
	`

	listQuery = `
		SELECT id, name, quantity, category, notes, is_completed, created_at
		FROM shopping_items
		WHERE strpos(lower(name), lower($1)) > 0
		ORDER BY is_completed ASC, created_at DESC;
	`
)

// Repository provides methods to interact with the shopping_items table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts item if allow accepts the number of items already on the
// list. The count and the insert share one transaction holding an advisory
// lock. An error from allow is returned unwrapped.
func (r *Repository) Create(ctx context.Context, item model.ShoppingItem, allow func(current int) error) (model.ShoppingItem, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.ShoppingItem{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, lockQuery); err != nil {
		return model.ShoppingItem{}, fmt.Errorf("failed to lock shopping items: %w", err)
	}

	var n int
	if err := tx.QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		return model.ShoppingItem{}, fmt.Errorf("failed to count shopping items: %w", err)
	}

	if allow != nil {
		if err := allow(n); err != nil {
			return model.ShoppingItem{}, err
		}
	}

	err = tx.QueryRowContext(
		ctx, createQuery, item.Name, item.Quantity, item.Category, item.Notes,
	).Scan(&item.ID, &item.IsCompleted, &item.CreatedAt)
	if err != nil {
		return model.ShoppingItem{}, fmt.Errorf("failed to create shopping item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.ShoppingItem{}, fmt.Errorf("failed to commit shopping item: %w", err)
	}

	return item, nil
}

// Toggle flips the completion flag of an item and returns the updated item.
func (r *Repository) Toggle(ctx context.Context, id uuid.UUID) (model.ShoppingItem, error) {
	var item model.ShoppingItem

	err := r.db.Master.QueryRowContext(ctx, toggleQuery, id).Scan(
		&item.ID, &item.Name, &item.Quantity, &item.Category, &item.Notes, &item.IsCompleted, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ShoppingItem{}, ErrItemNotFound
		}

		return model.ShoppingItem{}, fmt.Errorf("failed to toggle shopping item: %w", err)
	}

	return item, nil
}

// Delete removes an item by its ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrItemNotFound
	}

	return nil
}

// List returns the items matching search, incomplete ones first and newest
// first within each group.
func (r *Repository) List(ctx context.Context, search string) ([]model.ShoppingItem, error) {
	rows, err := r.db.QueryContext(ctx, listQuery, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	defer rows.Close()

	items := make([]model.ShoppingItem, 0)
	for rows.Next() {
		var item model.ShoppingItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Quantity, &item.Category, &item.Notes, &item.IsCompleted, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping items: %w", err)
	}

	return items, nil
}
