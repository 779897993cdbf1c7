package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/metrics"
	"github.com/aliskhannn/keepsafe/internal/model"
)

const (
	defaultCallTimeout = 5 * time.Second
	defaultQueueSize   = 256
)

var (
	ErrNotRunning     = errors.New("scheduler is not running")
	ErrAlreadyStarted = errors.New("scheduler already started")
)

// notificationCenter is the delivery service the scheduler registers requests with.
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks
type notificationCenter interface {
	Register(ctx context.Context, req model.NotificationRequest) error
	Cancel(ctx context.Context, identifiers ...string) error
	ListPending(ctx context.Context) ([]model.NotificationRequest, error)
	PermissionStatus(ctx context.Context) (model.PermissionStatus, error)
}

// Params configures a Scheduler.
type Params struct {
	Center      notificationCenter
	Metrics     *metrics.Scheduler
	UrgentDelay time.Duration
	CallTimeout time.Duration // bound on every call to the center
	QueueSize   int
	Now         func() time.Time
}

type op struct {
	name string
	run  func(ctx context.Context) error
	done *Completion
}

// Scheduler maintains one expiration notification per product.
//
// Operations are queued and executed one at a time in call order by a single
// goroutine, so a cancel issued before a schedule for the same product is
// always applied first. Callers never wait for the notification center unless
// they choose to wait on the returned Completion.
type Scheduler struct {
	center      notificationCenter
	policy      Policy
	metrics     *metrics.Scheduler
	now         func() time.Time
	callTimeout time.Duration
	queueSize   int

	mu      sync.RWMutex
	running bool
	started bool
	ctx     context.Context
	ops     chan op
	stop    chan struct{}
	stopped chan struct{}
}

// New builds a scheduler. It does nothing until Start is called.
func New(p Params) (*Scheduler, error) {
	if p.Center == nil {
		return nil, errors.New("notification center required")
	}

	s := &Scheduler{
		center:      p.Center,
		policy:      Policy{UrgentDelay: p.UrgentDelay},
		metrics:     p.Metrics,
		now:         p.Now,
		callTimeout: p.CallTimeout,
		queueSize:   p.QueueSize,
	}

	if s.now == nil {
		s.now = time.Now
	}
	if s.callTimeout <= 0 {
		s.callTimeout = defaultCallTimeout
	}
	if s.queueSize <= 0 {
		s.queueSize = defaultQueueSize
	}

	return s, nil
}

// Start launches the worker. When ctx is done the scheduler closes itself;
// operations still queued at that point are executed before the worker exits.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}

	s.started = true
	s.running = true
	s.ctx = context.WithoutCancel(ctx)
	s.ops = make(chan op, s.queueSize)
	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})

	go s.loop(ctx.Done())

	zlog.Logger.Info().Msg("expiration scheduler started")

	return nil
}

// Close stops accepting operations, finishes the queued ones and waits for
// the worker to exit. It is safe to call more than once.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		if s.stopped != nil {
			<-s.stopped
		}
		return
	}

	s.running = false
	close(s.stop)
	s.mu.Unlock()

	<-s.stopped
	zlog.Logger.Info().Msg("expiration scheduler stopped")
}

func (s *Scheduler) loop(ctxDone <-chan struct{}) {
	defer close(s.stopped)

	for {
		select {
		case o := <-s.ops:
			s.execute(o)
		case <-ctxDone:
			ctxDone = nil
			go s.Close()
		case <-s.stop:
			for {
				select {
				case o := <-s.ops:
					s.execute(o)
				default:
					return
				}
			}
		}
	}
}

func (s *Scheduler) execute(o op) {
	err := o.run(s.ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("op", o.name).Msg("scheduler operation failed")
	}

	o.done.finish(err)
}

func (s *Scheduler) submit(name string, run func(ctx context.Context) error) *Completion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.running {
		return Finished(ErrNotRunning)
	}

	c := newCompletion()
	s.ops <- op{name: name, run: run, done: c}

	return c
}

// call runs fn against the center with the per-call timeout.
func (s *Scheduler) call(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	return fn(ctx)
}

// Schedule replaces the pending notification of product with a freshly
// computed one. When the advance reminder would lie in the past nothing is
// registered and the operation still succeeds.
func (s *Scheduler) Schedule(product model.Product) *Completion {
	return s.submit("schedule", func(ctx context.Context) error {
		return s.schedule(ctx, product)
	})
}

// Cancel removes the pending notification of product, if any.
func (s *Scheduler) Cancel(product model.Product) *Completion {
	key := NotificationKey(product.ID)

	return s.submit("cancel", func(ctx context.Context) error {
		err := s.call(ctx, func(ctx context.Context) error {
			return s.center.Cancel(ctx, key)
		})
		if err != nil {
			return fmt.Errorf("cancel notification %s: %w", key, err)
		}

		s.metrics.IncCancelled(1)
		zlog.Logger.Debug().Str("identifier", key).Msg("notification cancelled")

		return nil
	})
}

// CancelAll removes every pending notification in the scheduler's own
// namespace. Requests registered by other producers are left alone.
func (s *Scheduler) CancelAll() *Completion {
	return s.submit("cancel_all", func(ctx context.Context) error {
		_, err := s.cancelAll(ctx)
		return err
	})
}

// RescheduleAll cancels every pending expiration notification and schedules
// each product in order. Nothing else runs in between, so the resulting
// pending set is exactly what scheduling each product alone would produce.
func (s *Scheduler) RescheduleAll(products []model.Product) *Completion {
	snapshot := make([]model.Product, len(products))
	copy(snapshot, products)

	return s.submit("reschedule_all", func(ctx context.Context) error {
		start := time.Now()

		var errs []error

		cancelled, err := s.cancelAll(ctx)
		if err != nil {
			errs = append(errs, err)
		}

		for _, p := range snapshot {
			if err := s.schedule(ctx, p); err != nil {
				errs = append(errs, err)
			}
		}

		s.metrics.ObserveReschedule(time.Since(start))

		zlog.Logger.Info().
			Int("cancelled", cancelled).
			Int("products", len(snapshot)).
			Int("errors", len(errs)).
			Msg("notifications rescheduled")

		return errors.Join(errs...)
	})
}

// LogDiagnostics logs the pending requests and the permission status.
func (s *Scheduler) LogDiagnostics() *Completion {
	return s.submit("diagnostics", func(ctx context.Context) error {
		pending, err := s.Pending(ctx)
		if err != nil {
			return err
		}

		zlog.Logger.Info().Int("count", len(pending)).Msg("pending notifications")

		for _, r := range pending {
			ev := zlog.Logger.Info().Str("identifier", r.Identifier).Str("title", r.Content.Title)
			if r.Trigger.Kind == model.TriggerDelay {
				ev = ev.Dur("delay", r.Trigger.Delay)
			} else {
				ev = ev.Time("fire_at", r.Trigger.At)
			}
			ev.Str("kind", string(r.Trigger.Kind)).Msg("pending notification")
		}

		status, err := s.Permission(ctx)
		if err != nil {
			return err
		}

		zlog.Logger.Info().Str("status", string(status)).Msg("notification permission")

		return nil
	})
}

// Pending lists every request the center holds, ordered by fire time.
func (s *Scheduler) Pending(ctx context.Context) ([]model.NotificationRequest, error) {
	var pending []model.NotificationRequest

	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		pending, err = s.center.ListPending(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list pending notifications: %w", err)
	}

	return pending, nil
}

// Permission reports the center's permission status.
func (s *Scheduler) Permission(ctx context.Context) (model.PermissionStatus, error) {
	var status model.PermissionStatus

	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		status, err = s.center.PermissionStatus(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("get permission status: %w", err)
	}

	return status, nil
}

func (s *Scheduler) schedule(ctx context.Context, product model.Product) error {
	key := NotificationKey(product.ID)
	log := zlog.Logger.With().Str("identifier", key).Str("product", product.Name).Logger()

	var errs []error

	err := s.call(ctx, func(ctx context.Context) error {
		return s.center.Cancel(ctx, key)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel previous notification")
		errs = append(errs, fmt.Errorf("cancel notification %s: %w", key, err))
	}

	req, outcome, ok := s.policy.Plan(product, s.now())
	if !ok {
		s.metrics.IncOutcome(string(outcome))
		log.Debug().Time("expiration_date", product.ExpirationDate).Msg("reminder date already passed, nothing scheduled")
		return errors.Join(errs...)
	}

	err = s.call(ctx, func(ctx context.Context) error {
		return s.center.Register(ctx, req)
	})
	if err != nil {
		s.metrics.IncOutcome(metrics.OutcomeFailed)
		log.Error().Err(err).Msg("failed to schedule notification")
		errs = append(errs, fmt.Errorf("register notification %s: %w", key, err))
		return errors.Join(errs...)
	}

	s.metrics.IncOutcome(string(outcome))

	if outcome == OutcomeUrgent {
		log.Info().Dur("delay", req.Trigger.Delay).Msg("urgent notification scheduled")
	} else {
		log.Info().Time("fire_at", req.Trigger.At).Msg("reminder notification scheduled")
	}

	return errors.Join(errs...)
}

func (s *Scheduler) cancelAll(ctx context.Context) (int, error) {
	pending, err := s.Pending(ctx)
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(pending))
	for _, r := range pending {
		if IsExpirationKey(r.Identifier) {
			ids = append(ids, r.Identifier)
		}
	}

	if len(ids) == 0 {
		return 0, nil
	}

	err = s.call(ctx, func(ctx context.Context) error {
		return s.center.Cancel(ctx, ids...)
	})
	if err != nil {
		return 0, fmt.Errorf("cancel notifications: %w", err)
	}

	s.metrics.IncCancelled(len(ids))

	return len(ids), nil
}
