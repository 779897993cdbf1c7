package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OutcomeFailed labels schedule attempts the notification center rejected.
const OutcomeFailed = "failed"

// Scheduler records what the expiration scheduler did. A nil *Scheduler is
// valid and records nothing.
type Scheduler struct {
	outcomes   *prometheus.CounterVec
	cancelled  prometheus.Counter
	reschedule prometheus.Histogram
}

// NewScheduler registers the scheduler metrics on reg.
func NewScheduler(reg prometheus.Registerer) *Scheduler {
	if reg == nil {
		return &Scheduler{}
	}

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keepsafe",
		Subsystem: "scheduler",
		Name:      "outcomes_total",
		Help:      "Schedule attempts by outcome.",
	}, []string{"outcome"})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "keepsafe",
		Subsystem: "scheduler",
		Name:      "cancelled_total",
		Help:      "Notifications cancelled explicitly or in bulk.",
	})
	reschedule := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "keepsafe",
		Subsystem: "scheduler",
		Name:      "reschedule_duration_seconds",
		Help:      "Duration of full reschedules in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
	reg.MustRegister(outcomes, cancelled, reschedule)

	return &Scheduler{
		outcomes:   outcomes,
		cancelled:  cancelled,
		reschedule: reschedule,
	}
}

// IncOutcome counts one schedule attempt.
func (s *Scheduler) IncOutcome(outcome string) {
	if s == nil || s.outcomes == nil {
		return
	}
	s.outcomes.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncCancelled adds n cancelled notifications.
func (s *Scheduler) IncCancelled(n int) {
	if s == nil || s.cancelled == nil || n <= 0 {
		return
	}
	s.cancelled.Add(float64(n))
}

// ObserveReschedule records how long a full reschedule took.
func (s *Scheduler) ObserveReschedule(d time.Duration) {
	if s == nil || s.reschedule == nil {
		return
	}
	s.reschedule.Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
