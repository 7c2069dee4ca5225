package metrics

import "github.com/prometheus/client_golang/prometheus"

// OrderMetrics counts order submissions and lifecycle moves.
type OrderMetrics struct {
	submitted   *prometheus.CounterVec
	value       *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	rejected    *prometheus.CounterVec
}

// NewOrderMetrics registers the order metrics on reg. A nil registerer yields a no-op
// recorder.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	submitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: namespace + "_orders_submitted_total",
		Help: "Orders submitted, by channel and payment method.",
	}, []string{"channel", "payment_method"})
	value := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    namespace + "_order_total_dollars",
		Help:    "Grand total of submitted orders, tax included.",
		Buckets: []float64{5, 10, 20, 30, 50, 75, 100, 200},
	}, []string{"channel"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: namespace + "_order_transitions_total",
		Help: "Applied order status transitions.",
	}, []string{"from", "to"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: namespace + "_order_transitions_rejected_total",
		Help: "Refused order status transitions.",
	}, []string{"from", "to"})
	reg.MustRegister(submitted, value, transitions, rejected)
	return &OrderMetrics{
		submitted:   submitted,
		value:       value,
		transitions: transitions,
		rejected:    rejected,
	}
}

// ObserveSubmitted records one submitted order worth totalCents.
func (m *OrderMetrics) ObserveSubmitted(channel, paymentMethod string, totalCents int64) {
	if m == nil || m.submitted == nil {
		return
	}
	m.submitted.WithLabelValues(normalizeLabel(channel), normalizeLabel(paymentMethod)).Inc()
	m.value.WithLabelValues(normalizeLabel(channel)).Observe(float64(totalCents) / 100)
}

// IncTransition counts an applied transition.
func (m *OrderMetrics) IncTransition(from, to string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(normalizeLabel(from), normalizeLabel(to)).Inc()
}

// IncRejected counts a refused transition.
func (m *OrderMetrics) IncRejected(from, to string) {
	if m == nil || m.rejected == nil {
		return
	}
	m.rejected.WithLabelValues(normalizeLabel(from), normalizeLabel(to)).Inc()
}
