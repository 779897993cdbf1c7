package premium

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/model"
)

// CacheKey is where the premium flag is cached.
const CacheKey = "keepsafe:premium"

var (
	ErrProductLimitReached  = errors.New("product limit reached, upgrade to premium for unlimited products")
	ErrShoppingLimitReached = errors.New("shopping list limit reached, upgrade to premium for unlimited items")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/premium/mock.go -package=mocks
type settingsRepository interface {
	PremiumActive(ctx context.Context) (bool, error)
	SetPremiumActive(ctx context.Context, active bool) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service decides what the current user may do based on the premium flag.
type Service struct {
	repo     settingsRepository
	cache    cache
	strategy retry.Strategy
	free     model.Limits
}

// NewService creates a premium service. free holds the limits of a free user.
func NewService(repo settingsRepository, cache cache, strategy retry.Strategy, free model.Limits) *Service {
	return &Service{repo: repo, cache: cache, strategy: strategy, free: free}
}

// IsPremium reports whether premium is active, reading through the cache.
func (s *Service) IsPremium(ctx context.Context) (bool, error) {
	v, err := s.cache.GetWithRetry(ctx, s.strategy, CacheKey)
	if err == nil {
		active, parseErr := strconv.ParseBool(v)
		if parseErr == nil {
			return active, nil
		}

		zlog.Logger.Warn().Err(parseErr).Str("value", v).Msg("invalid cached premium flag")
	} else if !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Msg("failed to get premium flag from cache")
	}

	active, err := s.repo.PremiumActive(ctx)
	if err != nil {
		return false, fmt.Errorf("get premium status: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, CacheKey, strconv.FormatBool(active)); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to cache premium flag")
	}

	return active, nil
}

// SetPremium stores the premium flag and refreshes the cache.
func (s *Service) SetPremium(ctx context.Context, active bool) error {
	if err := s.repo.SetPremiumActive(ctx, active); err != nil {
		return fmt.Errorf("set premium status: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, CacheKey, strconv.FormatBool(active)); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to cache premium flag")
	}

	zlog.Logger.Info().Bool("active", active).Msg("premium status changed")

	return nil
}

// Status returns the premium flag together with the limits and features it implies.
func (s *Service) Status(ctx context.Context) (model.Premium, error) {
	active, err := s.IsPremium(ctx)
	if err != nil {
		return model.Premium{}, err
	}

	return model.Premium{
		Active: active,
		Limits: s.limits(active),
		Features: model.Features{
			CloudSync:          active,
			Analytics:          active,
			SmartNotifications: active,
			CustomThemes:       active,
		},
	}, nil
}

// CheckProductLimit returns ErrProductLimitReached when a user with current
// products may not add another one.
func (s *Service) CheckProductLimit(ctx context.Context, current int) error {
	active, err := s.IsPremium(ctx)
	if err != nil {
		return err
	}

	if limit := s.limits(active).MaxProducts; limit > 0 && current >= limit {
		return ErrProductLimitReached
	}

	return nil
}

// CheckShoppingLimit returns ErrShoppingLimitReached when a user with current
// items may not add another one.
func (s *Service) CheckShoppingLimit(ctx context.Context, current int) error {
	active, err := s.IsPremium(ctx)
	if err != nil {
		return err
	}

	if limit := s.limits(active).MaxShoppingItems; limit > 0 && current >= limit {
		return ErrShoppingLimitReached
	}

	return nil
}

func (s *Service) limits(active bool) model.Limits {
	if active {
		return model.Limits{}
	}

	return s.free
}
