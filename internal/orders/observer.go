package orders

import (
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	"github.com/jatansg/sgfoodcourt/pkg/metrics"
)

type metricsObserver struct {
	m *metrics.OrderMetrics
}

// MetricsObserver reports lifecycle events to m.
func MetricsObserver(m *metrics.OrderMetrics) Observer {
	return metricsObserver{m: m}
}

func (o metricsObserver) OrderSubmitted(order Order) {
	o.m.ObserveSubmitted(string(order.Channel), string(order.PaymentMethod), order.TotalCents)
}

func (o metricsObserver) OrderTransitioned(from, to enums.OrderStatus) {
	o.m.IncTransition(string(from), string(to))
}

func (o metricsObserver) TransitionRejected(from, to enums.OrderStatus) {
	o.m.IncRejected(string(from), string(to))
}
