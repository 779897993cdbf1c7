package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/keepsafe/internal/model"
)

var now = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func setupCenter(t *testing.T) (*Center, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewCenter(rdb, "test")
	c.now = func() time.Time { return now }

	return c, mr
}

func delayed(id string, d time.Duration) model.NotificationRequest {
	return model.NotificationRequest{
		Identifier: id,
		Content: model.Content{
			Title:   "🚨 Expiration Alert!",
			Body:    "Milk expires tomorrow!",
			Payload: map[string]any{"product_name": "Milk"},
		},
		Trigger: model.DelayTrigger(d),
	}
}

func calendar(id string, at time.Time) model.NotificationRequest {
	return model.NotificationRequest{
		Identifier: id,
		Content:    model.Content{Title: "⏰ Expiration Reminder", Body: "Milk expires in 3 days!"},
		Trigger:    model.CalendarTrigger(at),
	}
}

func identifiers(reqs []model.NotificationRequest) []string {
	ids := make([]string, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.Identifier)
	}
	return ids
}

func TestCenter_RegisterAndList(t *testing.T) {
	c, _ := setupCenter(t)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, calendar("expiration_b", now.Add(72*time.Hour))))
	require.NoError(t, c.Register(ctx, delayed("expiration_a", 5*time.Second)))

	pending, err := c.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	assert.Equal(t, []string{"expiration_a", "expiration_b"}, identifiers(pending))
	assert.Equal(t, now, pending[0].RegisteredAt.UTC())
	assert.Equal(t, now.Add(5*time.Second), pending[0].FireAt().UTC())
	assert.Equal(t, "Milk", pending[0].Content.Payload["product_name"])
	assert.Equal(t, model.TriggerCalendar, pending[1].Trigger.Kind)
}

func TestCenter_RegisterReplacesSameIdentifier(t *testing.T) {
	c, _ := setupCenter(t)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, delayed("expiration_a", 5*time.Second)))
	require.NoError(t, c.Register(ctx, calendar("expiration_a", now.Add(96*time.Hour))))

	pending, err := c.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "⏰ Expiration Reminder", pending[0].Content.Title)
}

func TestCenter_RegisterRejectsEmptyIdentifier(t *testing.T) {
	c, _ := setupCenter(t)

	assert.Error(t, c.Register(context.Background(), delayed("", time.Second)))
}

func TestCenter_Cancel(t *testing.T) {
	c, _ := setupCenter(t)
	ctx := context.Background()

	require.NoError(t, c.Cancel(ctx))
	require.NoError(t, c.Cancel(ctx, "expiration_missing"))

	require.NoError(t, c.Register(ctx, delayed("expiration_a", time.Second)))
	require.NoError(t, c.Register(ctx, delayed("expiration_b", time.Second)))
	require.NoError(t, c.Register(ctx, delayed("expiration_c", time.Second)))

	require.NoError(t, c.Cancel(ctx, "expiration_a", "expiration_c"))

	pending, err := c.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"expiration_b"}, identifiers(pending))
}

func TestCenter_CancelAll(t *testing.T) {
	c, _ := setupCenter(t)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, delayed("expiration_a", time.Second)))
	require.NoError(t, c.Register(ctx, delayed("other_b", time.Second)))

	require.NoError(t, c.CancelAll(ctx))

	pending, err := c.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCenter_Due_ClaimsOnce(t *testing.T) {
	c, _ := setupCenter(t)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, delayed("expiration_a", 5*time.Second)))
	require.NoError(t, c.Register(ctx, calendar("expiration_b", now.Add(72*time.Hour))))

	due, err := c.Due(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	due, err = c.Due(ctx, now.Add(10*time.Second), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "expiration_a", due[0].Identifier)
	assert.Equal(t, "Milk expires tomorrow!", due[0].Content.Body)

	due, err = c.Due(ctx, now.Add(10*time.Second), 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	pending, err := c.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"expiration_b"}, identifiers(pending))
}

// reregisterHook replaces a request while Due is claiming, either just
// before or just after the claim reaches Redis.
type reregisterHook struct {
	center *Center
	req    model.NotificationRequest
	after  bool
	fired  bool
}

func (h *reregisterHook) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	if !h.after {
		h.fire(ctx, cmd)
	}
	return ctx, nil
}

func (h *reregisterHook) AfterProcess(ctx context.Context, cmd redis.Cmder) error {
	if h.after && cmd.Err() == nil {
		h.fire(ctx, cmd)
	}
	return nil
}

func (h *reregisterHook) BeforeProcessPipeline(ctx context.Context, _ []redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h *reregisterHook) AfterProcessPipeline(context.Context, []redis.Cmder) error {
	return nil
}

func (h *reregisterHook) fire(ctx context.Context, cmd redis.Cmder) {
	if h.fired || (cmd.Name() != "evalsha" && cmd.Name() != "eval") {
		return
	}
	h.fired = true

	if err := h.center.Cancel(ctx, h.req.Identifier); err != nil {
		panic(err)
	}
	if err := h.center.Register(ctx, h.req); err != nil {
		panic(err)
	}
}

func TestCenter_Due_ConcurrentReschedule(t *testing.T) {
	reminder := calendar("expiration_x", now.Add(10*24*time.Hour))

	tests := []struct {
		name     string
		after    bool
		wantDue  []string
		wantBody string
	}{
		{name: "rescheduled before claim", after: false, wantDue: []string{}},
		{name: "rescheduled after claim", after: true, wantDue: []string{"expiration_x"}, wantBody: "Milk expires tomorrow!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := setupCenter(t)
			ctx := context.Background()

			require.NoError(t, c.Register(ctx, delayed("expiration_x", 5*time.Second)))
			c.rdb.(*redis.Client).AddHook(&reregisterHook{center: c, req: reminder, after: tt.after})

			due, err := c.Due(ctx, now.Add(time.Minute), 10)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDue, identifiers(due))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, due[0].Content.Body)
			}

			pending, err := c.ListPending(ctx)
			require.NoError(t, err)
			require.Len(t, pending, 1)
			assert.Equal(t, "Milk expires in 3 days!", pending[0].Content.Body)
			assert.Equal(t, now.Add(10*24*time.Hour), pending[0].FireAt().UTC())

			members, err := c.rdb.ZRange(ctx, c.scheduleKey(), 0, -1).Result()
			require.NoError(t, err)
			assert.Equal(t, []string{"expiration_x"}, members)
		})
	}
}

func TestCenter_Due_DropsUndecodable(t *testing.T) {
	c, mr := setupCenter(t)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, delayed("expiration_a", time.Second)))
	mr.HSet(c.pendingKey(), "broken", "{not json")
	_, err := mr.ZAdd(c.scheduleKey(), 0, "broken")
	require.NoError(t, err)

	due, err := c.Due(ctx, now.Add(time.Minute), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"expiration_a"}, identifiers(due))
	assert.False(t, mr.Exists(c.pendingKey()))
}

func TestCenter_Due_RespectsLimit(t *testing.T) {
	c, _ := setupCenter(t)
	ctx := context.Background()

	for _, id := range []string{"expiration_a", "expiration_b", "expiration_c"} {
		require.NoError(t, c.Register(ctx, delayed(id, time.Second)))
	}

	due, err := c.Due(ctx, now.Add(time.Minute), 2)
	require.NoError(t, err)
	assert.Len(t, due, 2)

	due, err = c.Due(ctx, now.Add(time.Minute), 2)
	require.NoError(t, err)
	assert.Len(t, due, 1)
}

func TestCenter_PermissionStatus(t *testing.T) {
	c, _ := setupCenter(t)
	ctx := context.Background()

	status, err := c.PermissionStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PermissionNotDetermined, status)

	require.NoError(t, c.SetPermissionStatus(ctx, model.PermissionDenied))

	status, err = c.PermissionStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PermissionDenied, status)

	assert.ErrorIs(t, c.SetPermissionStatus(ctx, "granted"), ErrInvalidPermission)
}

func TestCenter_RedisUnavailable(t *testing.T) {
	c, mr := setupCenter(t)
	mr.Close()

	ctx := context.Background()
	assert.Error(t, c.Register(ctx, delayed("expiration_a", time.Second)))
	_, err := c.ListPending(ctx)
	assert.Error(t, err)
	_, err = c.PermissionStatus(ctx)
	assert.Error(t, err)
}
