package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/keepsafe/internal/model"
)

var ErrNoDeliveriesFound = errors.New("no deliveries found")

const (
	createQuery = `
		INSERT INTO deliveries (identifier, product_id, title, body, channel, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`

	listQuery = `
		SELECT id, identifier, product_id, title, body, channel, status, created_at
		FROM deliveries
		ORDER BY created_at DESC
		LIMIT $1;
	`
)

// Repository provides methods to interact with the deliveries log.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create records a delivery attempt and returns its ID.
func (r *Repository) Create(ctx context.Context, d model.Delivery) (uuid.UUID, error) {
	err := r.db.Master.QueryRowContext(
		ctx, createQuery, d.Identifier, d.ProductID, d.Title, d.Body, d.Channel, d.Status,
	).Scan(&d.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	return d.ID, nil
}

// List returns the most recent delivery attempts, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]model.Delivery, error) {
	rows, err := r.db.QueryContext(ctx, listQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []model.Delivery
	for rows.Next() {
		var d model.Delivery
		if err := rows.Scan(&d.ID, &d.Identifier, &d.ProductID, &d.Title, &d.Body, &d.Channel, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}

		deliveries = append(deliveries, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	if len(deliveries) == 0 {
		return nil, ErrNoDeliveriesFound
	}

	return deliveries, nil
}
