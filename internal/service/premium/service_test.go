package premium

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/keepsafe/internal/model"
	mocks "github.com/aliskhannn/keepsafe/internal/mocks/service/premium"
)

var (
	strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	free     = model.Limits{MaxProducts: 10, MaxShoppingItems: 20}
)

func newService(t *testing.T) (*Service, *mocks.MocksettingsRepository, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMocksettingsRepository(ctrl)
	c := mocks.NewMockcache(ctrl)

	return NewService(repo, c, strategy, free), repo, c
}

func TestService_IsPremium_CacheHit(t *testing.T) {
	s, _, c := newService(t)

	c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return("true", nil)

	active, err := s.IsPremium(context.Background())
	require.NoError(t, err)
	assert.True(t, active)
}

func TestService_IsPremium_CacheMiss(t *testing.T) {
	s, repo, c := newService(t)

	gomock.InOrder(
		c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return("", redis.Nil),
		repo.EXPECT().PremiumActive(gomock.Any()).Return(true, nil),
		c.EXPECT().SetWithRetry(gomock.Any(), strategy, CacheKey, "true").Return(nil),
	)

	active, err := s.IsPremium(context.Background())
	require.NoError(t, err)
	assert.True(t, active)
}

func TestService_IsPremium_CacheUnavailable(t *testing.T) {
	s, repo, c := newService(t)

	c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return("", errors.New("connection refused"))
	repo.EXPECT().PremiumActive(gomock.Any()).Return(false, nil)
	c.EXPECT().SetWithRetry(gomock.Any(), strategy, CacheKey, "false").Return(errors.New("connection refused"))

	active, err := s.IsPremium(context.Background())
	require.NoError(t, err)
	assert.False(t, active)
}

func TestService_IsPremium_CorruptCacheFallsBack(t *testing.T) {
	s, repo, c := newService(t)

	c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return("maybe", nil)
	repo.EXPECT().PremiumActive(gomock.Any()).Return(true, nil)
	c.EXPECT().SetWithRetry(gomock.Any(), strategy, CacheKey, "true").Return(nil)

	active, err := s.IsPremium(context.Background())
	require.NoError(t, err)
	assert.True(t, active)
}

func TestService_IsPremium_RepoError(t *testing.T) {
	s, repo, c := newService(t)

	c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return("", redis.Nil)
	repo.EXPECT().PremiumActive(gomock.Any()).Return(false, errors.New("db down"))

	_, err := s.IsPremium(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestService_SetPremium(t *testing.T) {
	s, repo, c := newService(t)

	repo.EXPECT().SetPremiumActive(gomock.Any(), true).Return(nil)
	c.EXPECT().SetWithRetry(gomock.Any(), strategy, CacheKey, "true").Return(nil)

	require.NoError(t, s.SetPremium(context.Background(), true))
}

func TestService_SetPremium_RepoError(t *testing.T) {
	s, repo, _ := newService(t)

	repo.EXPECT().SetPremiumActive(gomock.Any(), false).Return(errors.New("db down"))

	require.Error(t, s.SetPremium(context.Background(), false))
}

func TestService_Status(t *testing.T) {
	tests := []struct {
		name   string
		cached string
		want   model.Premium
	}{
		{
			name:   "free",
			cached: "false",
			want:   model.Premium{Active: false, Limits: free},
		},
		{
			name:   "premium",
			cached: "true",
			want: model.Premium{
				Active:   true,
				Features: model.Features{CloudSync: true, Analytics: true, SmartNotifications: true, CustomThemes: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, c := newService(t)
			c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return(tt.cached, nil)

			got, err := s.Status(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_CheckProductLimit(t *testing.T) {
	tests := []struct {
		name    string
		cached  string
		current int
		wantErr error
	}{
		{"free below limit", "false", 9, nil},
		{"free at limit", "false", 10, ErrProductLimitReached},
		{"premium above free limit", "true", 500, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, c := newService(t)
			c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return(tt.cached, nil)

			err := s.CheckProductLimit(context.Background(), tt.current)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_CheckShoppingLimit(t *testing.T) {
	tests := []struct {
		name    string
		cached  string
		current int
		wantErr error
	}{
		{"free below limit", "false", 19, nil},
		{"free at limit", "false", 20, ErrShoppingLimitReached},
		{"premium", "true", 20, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, c := newService(t)
			c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return(tt.cached, nil)

			err := s.CheckShoppingLimit(context.Background(), tt.current)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_CheckProductLimit_Unlimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := mocks.NewMockcache(ctrl)
	s := NewService(mocks.NewMocksettingsRepository(ctrl), c, strategy, model.Limits{})

	c.EXPECT().GetWithRetry(gomock.Any(), strategy, CacheKey).Return("false", nil)

	assert.NoError(t, s.CheckProductLimit(context.Background(), 10000))
}
