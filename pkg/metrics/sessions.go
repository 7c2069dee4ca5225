package metrics

import "github.com/prometheus/client_golang/prometheus"

// SessionMetrics tracks live carts and how many the sweeper discards.
type SessionMetrics struct {
	live  prometheus.Gauge
	swept prometheus.Counter
}

// NewSessionMetrics registers the session metrics on reg. A nil registerer yields a
// no-op recorder.
func NewSessionMetrics(reg prometheus.Registerer) *SessionMetrics {
	if reg == nil {
		return &SessionMetrics{}
	}
	live := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: namespace + "_sessions_live",
		Help: "Sessions currently holding a cart.",
	})
	swept := prometheus.NewCounter(prometheus.CounterOpts{
		Name: namespace + "_sessions_swept_total",
		Help: "Idle sessions discarded by the sweeper.",
	})
	reg.MustRegister(live, swept)
	return &SessionMetrics{live: live, swept: swept}
}

// SetLive records the current number of sessions.
func (m *SessionMetrics) SetLive(count int) {
	if m == nil || m.live == nil {
		return
	}
	m.live.Set(float64(count))
}

// AddSwept counts discarded sessions.
func (m *SessionMetrics) AddSwept(count int) {
	if m == nil || m.swept == nil || count <= 0 {
		return
	}
	m.swept.Add(float64(count))
}
