package shopping

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aliskhannn/keepsafe/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/shopping/mock.go -package=mocks
type shoppingRepository interface {
	Create(ctx context.Context, item model.ShoppingItem, allow func(current int) error) (model.ShoppingItem, error)
	Toggle(ctx context.Context, id uuid.UUID) (model.ShoppingItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]model.ShoppingItem, error)
}

type shoppingLimiter interface {
	CheckShoppingLimit(ctx context.Context, current int) error
}

// Service manages the shopping list.
type Service struct {
	repo    shoppingRepository
	limiter shoppingLimiter
}

// NewService creates a shopping list service.
func NewService(repo shoppingRepository, l shoppingLimiter) *Service {
	return &Service{repo: repo, limiter: l}
}

// Create adds an item. It fails with premium.ErrShoppingLimitReached when the
// free tier is exhausted.
func (s *Service) Create(ctx context.Context, item model.ShoppingItem) (model.ShoppingItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.Category == "" {
		item.Category = model.DefaultShoppingCategory
	}
	if item.Notes != nil && strings.TrimSpace(*item.Notes) == "" {
		item.Notes = nil
	}

	created, err := s.repo.Create(ctx, item, func(current int) error {
		return s.limiter.CheckShoppingLimit(ctx, current)
	})
	if err != nil {
		return model.ShoppingItem{}, fmt.Errorf("create shopping item: %w", err)
	}

	return created, nil
}

// Toggle flips the completion state of an item.
func (s *Service) Toggle(ctx context.Context, id uuid.UUID) (model.ShoppingItem, error) {
	item, err := s.repo.Toggle(ctx, id)
	if err != nil {
		return model.ShoppingItem{}, fmt.Errorf("toggle shopping item: %w", err)
	}

	return item, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}

	return nil
}

// List returns the items matching search, incomplete first.
func (s *Service) List(ctx context.Context, search string) ([]model.ShoppingItem, error) {
	items, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}

	return items, nil
}
