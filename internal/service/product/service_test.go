package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/keepsafe/internal/mocks/service/product"
	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/scheduler"
)

type deps struct {
	repo      *mocks.MockproductRepository
	scheduler *mocks.MockexpirationScheduler
	limiter   *mocks.MockproductLimiter
	prefs     *mocks.Mockpreferences
}

func newService(t *testing.T) (*Service, deps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := deps{
		repo:      mocks.NewMockproductRepository(ctrl),
		scheduler: mocks.NewMockexpirationScheduler(ctrl),
		limiter:   mocks.NewMockproductLimiter(ctrl),
		prefs:     mocks.NewMockpreferences(ctrl),
	}

	return NewService(d.repo, d.scheduler, d.limiter, d.prefs), d
}

// createWith stands in for the repository's transactional insert: it runs
// the limit check against current and stores the product when it passes.
func createWith(current int, stored model.Product, err error) func(context.Context, model.Product, func(int) error) (model.Product, error) {
	return func(_ context.Context, _ model.Product, allow func(int) error) (model.Product, error) {
		if aerr := allow(current); aerr != nil {
			return model.Product{}, aerr
		}
		return stored, err
	}
}

func TestService_Create(t *testing.T) {
	s, d := newService(t)

	exp := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	stored := model.Product{ID: uuid.New(), Name: "Yogurt", Category: model.DefaultProductCategory, ExpirationDate: exp}
	want := model.Product{Name: "Yogurt", Category: model.DefaultProductCategory, ExpirationDate: exp}

	gomock.InOrder(
		d.repo.EXPECT().Create(gomock.Any(), want, gomock.Any()).DoAndReturn(createWith(2, stored, nil)),
		d.limiter.EXPECT().CheckProductLimit(gomock.Any(), 2).Return(nil),
		d.scheduler.EXPECT().Schedule(stored).Return(scheduler.Finished(nil)),
	)

	got, err := s.Create(context.Background(), model.Product{Name: " Yogurt ", ExpirationDate: exp})
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestService_Create_LimitReached(t *testing.T) {
	s, d := newService(t)

	limitErr := errors.New("limit reached")

	d.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(createWith(10, model.Product{}, nil))
	d.limiter.EXPECT().CheckProductLimit(gomock.Any(), 10).Return(limitErr)

	_, err := s.Create(context.Background(), model.Product{Name: "Cheese"})
	assert.ErrorIs(t, err, limitErr)
}

func TestService_Create_RepoErrorSchedulesNothing(t *testing.T) {
	s, d := newService(t)

	d.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(createWith(0, model.Product{}, errors.New("db down")))
	d.limiter.EXPECT().CheckProductLimit(gomock.Any(), 0).Return(nil)

	_, err := s.Create(context.Background(), model.Product{Name: "Cheese"})
	require.Error(t, err)
}

func TestService_Create_SchedulerFailureDoesNotFail(t *testing.T) {
	s, d := newService(t)

	stored := model.Product{ID: uuid.New(), Name: "Cheese"}

	d.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(createWith(0, stored, nil))
	d.limiter.EXPECT().CheckProductLimit(gomock.Any(), 0).Return(nil)
	d.scheduler.EXPECT().Schedule(stored).Return(scheduler.Finished(scheduler.ErrNotRunning))

	_, err := s.Create(context.Background(), model.Product{Name: "Cheese"})
	require.NoError(t, err)
}

func TestService_Update(t *testing.T) {
	s, d := newService(t)

	id := uuid.New()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	oldExp := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	newExp := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	existing := model.Product{ID: id, Name: "Milk", Category: "Food & Drinks", ExpirationDate: oldExp, Image: []byte{1}, CreatedAt: created}
	want := model.Product{ID: id, Name: "Oat milk", Category: "Food & Drinks", ExpirationDate: newExp, Image: []byte{1}, CreatedAt: created}

	d.repo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)
	d.repo.EXPECT().Update(gomock.Any(), want).Return(nil)
	d.scheduler.EXPECT().Schedule(want).Return(scheduler.Finished(nil))

	got, err := s.Update(context.Background(), model.Product{ID: id, Name: "Oat milk", ExpirationDate: newExp})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Update_NotFound(t *testing.T) {
	s, d := newService(t)

	id := uuid.New()
	notFound := errors.New("product not found")
	d.repo.EXPECT().GetByID(gomock.Any(), id).Return(model.Product{}, notFound)

	_, err := s.Update(context.Background(), model.Product{ID: id, Name: "x"})
	assert.ErrorIs(t, err, notFound)
}

func TestService_Delete(t *testing.T) {
	s, d := newService(t)

	id := uuid.New()

	gomock.InOrder(
		d.repo.EXPECT().Delete(gomock.Any(), id).Return(nil),
		d.scheduler.EXPECT().Cancel(model.Product{ID: id}).Return(scheduler.Finished(nil)),
	)

	require.NoError(t, s.Delete(context.Background(), id))
}

func TestService_Delete_RepoErrorKeepsNotification(t *testing.T) {
	s, d := newService(t)

	id := uuid.New()
	d.repo.EXPECT().Delete(gomock.Any(), id).Return(errors.New("not found"))

	require.Error(t, s.Delete(context.Background(), id))
}

func TestService_List_UsesSortPreference(t *testing.T) {
	s, d := newService(t)

	prefs := model.DefaultSettings()
	prefs.SortPreference = model.SortByName

	d.prefs.EXPECT().Get(gomock.Any()).Return(prefs, nil)
	d.repo.EXPECT().List(gomock.Any(), "milk", model.SortByName).Return([]model.Product{{Name: "Milk"}}, nil)

	got, err := s.List(context.Background(), " milk")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_List_PreferenceErrorFallsBack(t *testing.T) {
	s, d := newService(t)

	d.prefs.EXPECT().Get(gomock.Any()).Return(model.Settings{}, errors.New("db down"))
	d.repo.EXPECT().List(gomock.Any(), "", model.SortByExpiration).Return(nil, nil)

	_, err := s.List(context.Background(), "")
	require.NoError(t, err)
}

func TestService_Resync(t *testing.T) {
	s, d := newService(t)

	products := []model.Product{{ID: uuid.New(), Name: "Milk"}, {ID: uuid.New(), Name: "Eggs"}}

	d.repo.EXPECT().List(gomock.Any(), "", model.SortByExpiration).Return(products, nil)
	d.scheduler.EXPECT().RescheduleAll(products).Return(scheduler.Finished(nil))

	n, err := s.Resync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_Resync_SchedulerError(t *testing.T) {
	s, d := newService(t)

	d.repo.EXPECT().List(gomock.Any(), "", model.SortByExpiration).Return(nil, nil)
	d.scheduler.EXPECT().RescheduleAll(gomock.Any()).Return(scheduler.Finished(scheduler.ErrNotRunning))

	_, err := s.Resync(context.Background())
	assert.ErrorIs(t, err, scheduler.ErrNotRunning)
}
