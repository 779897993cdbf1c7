// Package delivery implements the notification center the scheduler hands
// requests to: a Redis-backed store of pending requests indexed by fire time.
package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/model"
)

// DefaultNamespace prefixes every key the center writes.
const DefaultNamespace = "keepsafe:notifications"

var ErrInvalidPermission = errors.New("invalid permission status")

// Center stores pending notification requests in Redis.
//
// Requests live in a hash keyed by identifier; their fire times are indexed
// in a sorted set so Due can pick up what is ready. Both are always written
// in one MULTI so they never disagree.
type Center struct {
	rdb redis.Cmdable
	ns  string
	now func() time.Time
}

// NewCenter creates a center on top of rdb. An empty namespace falls back to
// DefaultNamespace.
func NewCenter(rdb redis.Cmdable, namespace string) *Center {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Center{rdb: rdb, ns: namespace, now: time.Now}
}

func (c *Center) pendingKey() string    { return c.ns + ":pending" }
func (c *Center) scheduleKey() string   { return c.ns + ":schedule" }
func (c *Center) permissionKey() string { return c.ns + ":permission" }

// Register stores req, replacing any request with the same identifier.
func (c *Center) Register(ctx context.Context, req model.NotificationRequest) error {
	if req.Identifier == "" {
		return errors.New("notification identifier is empty")
	}

	if req.RegisteredAt.IsZero() {
		req.RegisteredAt = c.now()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal notification request: %w", err)
	}

	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, c.pendingKey(), req.Identifier, body)
		pipe.ZAdd(ctx, c.scheduleKey(), &redis.Z{
			Score:  float64(req.FireAt().UnixMilli()),
			Member: req.Identifier,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("register notification %s: %w", req.Identifier, err)
	}

	return nil
}

// Cancel removes the given requests. Unknown identifiers are ignored.
func (c *Center) Cancel(ctx context.Context, identifiers ...string) error {
	if len(identifiers) == 0 {
		return nil
	}

	members := make([]interface{}, len(identifiers))
	for i, id := range identifiers {
		members[i] = id
	}

	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, c.pendingKey(), identifiers...)
		pipe.ZRem(ctx, c.scheduleKey(), members...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cancel notifications: %w", err)
	}

	return nil
}

// CancelAll drops every pending request, whoever registered it.
func (c *Center) CancelAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, c.pendingKey(), c.scheduleKey()).Err(); err != nil {
		return fmt.Errorf("cancel all notifications: %w", err)
	}

	return nil
}

// ListPending returns every pending request ordered by fire time.
func (c *Center) ListPending(ctx context.Context) ([]model.NotificationRequest, error) {
	ids, err := c.rdb.ZRange(ctx, c.scheduleKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list pending notifications: %w", err)
	}

	if len(ids) == 0 {
		return []model.NotificationRequest{}, nil
	}

	values, err := c.rdb.HMGet(ctx, c.pendingKey(), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("load pending notifications: %w", err)
	}

	out := make([]model.NotificationRequest, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// cancelled between the two reads
			continue
		}

		req, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decode notification %s: %w", ids[i], err)
		}

		out = append(out, req)
	}

	return out, nil
}

// claimScript pops the due identifiers from the schedule and returns their
// stored requests. It runs as one script so a request re-registered for the
// same identifier can never be read under the old fire time.
var claimScript = redis.NewScript(`
local ids = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', '0', ARGV[2])
local out = {}
for _, id in ipairs(ids) do
	redis.call('ZREM', KEYS[1], id)
	local raw = redis.call('HGET', KEYS[2], id)
	if raw then
		redis.call('HDEL', KEYS[2], id)
		table.insert(out, raw)
	end
end
return out
`)

// Due claims up to limit requests whose fire time is not after now and
// removes them from the pending set. Each request is handed to exactly one
// caller even when several dispatchers poll the same center.
func (c *Center) Due(ctx context.Context, now time.Time, limit int) ([]model.NotificationRequest, error) {
	if limit <= 0 {
		limit = 100
	}

	raws, err := claimScript.Run(
		ctx, c.rdb, []string{c.scheduleKey(), c.pendingKey()},
		now.UnixMilli(), limit,
	).StringSlice()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("claim due notifications: %w", err)
	}

	due := make([]model.NotificationRequest, 0, len(raws))
	for _, raw := range raws {
		req, err := decode(raw)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("dropping undecodable notification")
			continue
		}

		due = append(due, req)
	}

	return due, nil
}

// PermissionStatus returns the stored authorization status, or
// PermissionNotDetermined when none was ever set.
func (c *Center) PermissionStatus(ctx context.Context) (model.PermissionStatus, error) {
	v, err := c.rdb.Get(ctx, c.permissionKey()).Result()
	if errors.Is(err, redis.Nil) {
		return model.PermissionNotDetermined, nil
	}
	if err != nil {
		return "", fmt.Errorf("get permission status: %w", err)
	}

	return model.PermissionStatus(v), nil
}

// SetPermissionStatus stores the authorization status.
func (c *Center) SetPermissionStatus(ctx context.Context, status model.PermissionStatus) error {
	if !status.Valid() {
		return ErrInvalidPermission
	}

	if err := c.rdb.Set(ctx, c.permissionKey(), string(status), 0).Err(); err != nil {
		return fmt.Errorf("set permission status: %w", err)
	}

	return nil
}

func decode(raw string) (model.NotificationRequest, error) {
	var req model.NotificationRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return model.NotificationRequest{}, err
	}

	return req, nil
}
