package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestOrderMetricsCountsSubmissionsAndTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewOrderMetrics(reg)
	metrics.ObserveSubmitted("pos", "cash", 3652)
	metrics.ObserveSubmitted("pos", "cash", 600)
	metrics.IncTransition("pending", "preparing")
	metrics.IncRejected("cancelled", "preparing")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "sgfoodcourt_orders_submitted_total", "payment_method", "cash"); err != nil {
		t.Fatalf("fetch submitted: %v", err)
	} else if got != 2 {
		t.Fatalf("expected submitted=2, got %f", got)
	}
	if got, err := fetchHistogramSum(mfs, "sgfoodcourt_order_total_dollars", "channel", "pos"); err != nil {
		t.Fatalf("fetch value: %v", err)
	} else if got < 42.51 || got > 42.53 {
		t.Fatalf("expected value sum 42.52, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "sgfoodcourt_order_transitions_total", "to", "preparing"); err != nil {
		t.Fatalf("fetch transitions: %v", err)
	} else if got != 1 {
		t.Fatalf("expected transitions=1, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "sgfoodcourt_order_transitions_rejected_total", "from", "cancelled"); err != nil {
		t.Fatalf("fetch rejected: %v", err)
	} else if got != 1 {
		t.Fatalf("expected rejected=1, got %f", got)
	}
}

func TestHTTPMetricsLabelsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)
	metrics.Observe("GET", "/api/v1/orders/{orderId}", 200, 5*time.Millisecond)
	metrics.Observe("GET", "", 404, time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchCounterValue(mfs, "sgfoodcourt_http_requests_total", "route", "/api/v1/orders/{orderId}"); err != nil {
		t.Fatalf("fetch requests: %v", err)
	} else if got != 1 {
		t.Fatalf("expected 1 request, got %f", got)
	}
	if _, err := fetchCounterValue(mfs, "sgfoodcourt_http_requests_total", "route", "unknown"); err != nil {
		t.Fatalf("blank routes should be labelled unknown: %v", err)
	}
}

func TestSessionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewSessionMetrics(reg)
	metrics.SetLive(3)
	metrics.AddSwept(2)
	metrics.AddSwept(0)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	live := findMetricFamily(mfs, "sgfoodcourt_sessions_live")
	if live == nil || live.GetMetric()[0].GetGauge().GetValue() != 3 {
		t.Fatalf("expected live gauge 3, got %v", live)
	}
	swept := findMetricFamily(mfs, "sgfoodcourt_sessions_swept_total")
	if swept == nil || swept.GetMetric()[0].GetCounter().GetValue() != 2 {
		t.Fatalf("expected swept counter 2, got %v", swept)
	}
}
