package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jatansg/sgfoodcourt/pkg/enums"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
	"github.com/jatansg/sgfoodcourt/pkg/metrics"
)

func TestRequestIDEchoesOrGenerates(t *testing.T) {
	handler := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if got := resp.Header().Get(requestIDHeader); got != "abc" {
		t.Fatalf("expected echoed request id, got %q", got)
	}

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected generated request id")
	}
}

func TestRequestIDReplacesMalformedIDs(t *testing.T) {
	handler := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, bad := range []string{"has space", "tab\tid", strings.Repeat("x", maxRequestIDLen+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, bad)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)

		got := resp.Header().Get(requestIDHeader)
		if got == bad || got == "" {
			t.Fatalf("expected %q to be replaced, got %q", bad, got)
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("expected generated uuid, got %q", got)
		}
	}
}

func TestRequestIDEchoesSessionID(t *testing.T) {
	handler := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(sessionIDHeader, " s-42 ")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if got := resp.Header().Get(sessionIDHeader); got != "s-42" {
		t.Fatalf("expected echoed session id, got %q", got)
	}

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if _, ok := resp.Header()[sessionIDHeader]; ok {
		t.Fatal("session header should be absent when the request has none")
	}
}

func TestRecovererReturns500(t *testing.T) {
	handler := Recoverer(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestActorDefaultsToCustomer(t *testing.T) {
	var (
		role    enums.ActorRole
		session string
		stall   string
	)
	handler := Actor(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role = RoleFromContext(r.Context())
		session = SessionIDFromContext(r.Context())
		stall = StallIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(sessionIDHeader, " s-1 ")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if role != enums.ActorRoleCustomer || session != "s-1" || stall != "" {
		t.Fatalf("unexpected actor %s %q %q", role, session, stall)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(actorRoleHeader, "stall_owner")
	req.Header.Set(stallIDHeader, "stall2")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if role != enums.ActorRoleStallOwner || stall != "stall2" {
		t.Fatalf("unexpected actor %s %q", role, stall)
	}
}

func TestActorRejectsUnknownRole(t *testing.T) {
	called := false
	handler := Actor(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(actorRoleHeader, "chef")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if called || resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without calling next, got %d called=%v", resp.Code, called)
	}
}

func TestRequireSessionAndRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	resp := httptest.NewRecorder()
	RequireSession(logger.Nop())(ok).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRole(req.Context(), enums.ActorRoleCustomer))
	resp = httptest.NewRecorder()
	RequireRole(logger.Nop(), enums.ActorRoleCoffeeShopOwner, enums.ActorRoleStallOwner)(ok).ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", resp.Code)
	}

	req = req.WithContext(WithRole(req.Context(), enums.ActorRoleStallOwner))
	resp = httptest.NewRecorder()
	RequireRole(logger.Nop(), enums.ActorRoleCoffeeShopOwner, enums.ActorRoleStallOwner)(ok).ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through for stall owner, got %d", resp.Code)
	}
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := chi.NewRouter()
	r.Use(Metrics(metrics.NewHTTPMetrics(reg)))
	r.Get("/orders/{orderId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/123", nil))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "sgfoodcourt_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == "/orders/{orderId}" && labels["status"] == "418" {
				return
			}
		}
	}
	t.Fatal("expected request counted under route pattern")
}
