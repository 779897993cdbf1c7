package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/scheduler"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/product/mock.go -package=mocks
type productRepository interface {
	Create(ctx context.Context, p model.Product, allow func(current int) error) (model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search, sort string) ([]model.Product, error)
}

type expirationScheduler interface {
	Schedule(p model.Product) *scheduler.Completion
	Cancel(p model.Product) *scheduler.Completion
	RescheduleAll(products []model.Product) *scheduler.Completion
}

type productLimiter interface {
	CheckProductLimit(ctx context.Context, current int) error
}

type preferences interface {
	Get(ctx context.Context) (model.Settings, error)
}

// Service manages products and keeps their expiration notifications in sync.
type Service struct {
	repo      productRepository
	scheduler expirationScheduler
	limiter   productLimiter
	prefs     preferences
}

// NewService creates a product service.
func NewService(repo productRepository, s expirationScheduler, l productLimiter, p preferences) *Service {
	return &Service{repo: repo, scheduler: s, limiter: l, prefs: p}
}

// Create stores a new product and schedules its notification. It fails with
// premium.ErrProductLimitReached when the free tier is exhausted.
func (s *Service) Create(ctx context.Context, p model.Product) (model.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Category == "" {
		p.Category = model.DefaultProductCategory
	}

	created, err := s.repo.Create(ctx, p, func(current int) error {
		return s.limiter.CheckProductLimit(ctx, current)
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.scheduler.Schedule(created)

	zlog.Logger.Info().Str("id", created.ID.String()).Str("name", created.Name).Msg("product created")

	return created, nil
}

// Update overwrites name, category, expiration date and image of an existing
// product and reschedules its notification.
func (s *Service) Update(ctx context.Context, p model.Product) (model.Product, error) {
	existing, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	existing.Name = strings.TrimSpace(p.Name)
	existing.ExpirationDate = p.ExpirationDate
	if p.Category != "" {
		existing.Category = p.Category
	}
	if p.Image != nil {
		existing.Image = p.Image
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return model.Product{}, fmt.Errorf("update product: %w", err)
	}

	s.scheduler.Schedule(existing)

	return existing, nil
}

// Delete removes a product and cancels its notification.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.scheduler.Cancel(model.Product{ID: id})

	return nil
}

// Get returns a single product.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	return p, nil
}

// List returns the products matching search, ordered by the user's sort preference.
func (s *Service) List(ctx context.Context, search string) ([]model.Product, error) {
	sort := model.SortByExpiration

	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to load sort preference, using default")
	} else if prefs.SortPreference != "" {
		sort = prefs.SortPreference
	}

	products, err := s.repo.List(ctx, strings.TrimSpace(search), sort)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

// Resync rebuilds every expiration notification from the stored products and
// waits for the scheduler to finish. It returns the number of products.
func (s *Service) Resync(ctx context.Context) (int, error) {
	products, err := s.repo.List(ctx, "", model.SortByExpiration)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}

	if err := s.scheduler.RescheduleAll(products).Wait(ctx); err != nil {
		return len(products), fmt.Errorf("reschedule notifications: %w", err)
	}

	return len(products), nil
}
