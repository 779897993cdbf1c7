package metrics

import "github.com/prometheus/client_golang/prometheus"

// Dispatch records due notifications moving through the broker and out to
// delivery channels. A nil *Dispatch records nothing.
type Dispatch struct {
	published  *prometheus.CounterVec
	deliveries *prometheus.CounterVec
}

// NewDispatch registers the dispatch metrics on reg.
func NewDispatch(reg prometheus.Registerer) *Dispatch {
	if reg == nil {
		return &Dispatch{}
	}

	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keepsafe",
		Subsystem: "dispatch",
		Name:      "published_total",
		Help:      "Due notifications handed to the broker, by result.",
	}, []string{"result"})
	deliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keepsafe",
		Subsystem: "dispatch",
		Name:      "deliveries_total",
		Help:      "Delivery attempts by channel and status.",
	}, []string{"channel", "status"})
	reg.MustRegister(published, deliveries)

	return &Dispatch{published: published, deliveries: deliveries}
}

// IncPublished counts one publish attempt; ok reports whether it succeeded.
func (d *Dispatch) IncPublished(ok bool) {
	if d == nil || d.published == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	d.published.WithLabelValues(result).Inc()
}

// IncDelivery counts one recorded delivery.
func (d *Dispatch) IncDelivery(channel, status string) {
	if d == nil || d.deliveries == nil {
		return
	}
	d.deliveries.WithLabelValues(normalizeLabel(channel), normalizeLabel(status)).Inc()
}
