package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jatansg/sgfoodcourt/api/controllers/dto"
	"github.com/jatansg/sgfoodcourt/api/middleware"
	cartsvc "github.com/jatansg/sgfoodcourt/internal/cart"
	"github.com/jatansg/sgfoodcourt/internal/catalog"
	"github.com/jatansg/sgfoodcourt/internal/pricing"
	"github.com/jatansg/sgfoodcourt/internal/session"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

type stubCartService struct {
	snap         cartsvc.Snapshot
	err          error
	lastSession  string
	lastItem     string
	lastQuantity int
	cleared      bool
}

func (s *stubCartService) Open(context.Context, enums.OrderChannel) (session.Info, error) {
	return session.Info{}, nil
}

func (s *stubCartService) Cart(_ context.Context, sessionID string) (cartsvc.Snapshot, error) {
	s.lastSession = sessionID
	return s.snap, s.err
}

func (s *stubCartService) AddItem(_ context.Context, sessionID, itemID string) (cartsvc.Snapshot, error) {
	s.lastSession = sessionID
	s.lastItem = itemID
	return s.snap, s.err
}

func (s *stubCartService) SetQuantity(_ context.Context, sessionID, itemID string, quantity int) (cartsvc.Snapshot, error) {
	s.lastSession = sessionID
	s.lastItem = itemID
	s.lastQuantity = quantity
	return s.snap, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, sessionID, itemID string) (cartsvc.Snapshot, error) {
	s.lastSession = sessionID
	s.lastItem = itemID
	return s.snap, s.err
}

func (s *stubCartService) Clear(_ context.Context, sessionID string) (cartsvc.Snapshot, error) {
	s.lastSession = sessionID
	s.cleared = true
	return s.snap, s.err
}

func sampleSnapshot(t *testing.T) cartsvc.Snapshot {
	t.Helper()
	item, ok := catalog.Demo().Item("item1")
	if !ok {
		t.Fatal("demo catalog missing item1")
	}
	c := cartsvc.New(pricing.DefaultTaxRate)
	c.AddItem(item)
	c.AddItem(item)
	return c.Snapshot()
}

func newCartRequest(method, target string, body any, sessionID, itemID string) *http.Request {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	ctx := req.Context()
	if sessionID != "" {
		ctx = middleware.WithSessionID(ctx, sessionID)
	}
	if itemID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("itemId", itemID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) dto.Cart {
	t.Helper()
	var envelope struct {
		Data dto.Cart `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

var presenter = dto.Presenter{CurrencySymbol: "S$"}

func TestFetchReturnsPresentedCart(t *testing.T) {
	svc := &stubCartService{snap: sampleSnapshot(t)}
	rec := httptest.NewRecorder()

	Fetch(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodGet, "/api/v1/cart", nil, "sess-1", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	got := decodeCart(t, rec)
	if got.SessionID != "sess-1" || got.ItemCount != 2 {
		t.Fatalf("unexpected cart %+v", got)
	}
	if got.Subtotal.Cents != 2500 || got.Tax.Cents != 225 || got.Total.Cents != 2725 {
		t.Fatalf("unexpected totals %+v", got)
	}
	if len(got.Lines) != 1 || got.Lines[0].LineTotal.Display != "S$25.00" {
		t.Fatalf("unexpected lines %+v", got.Lines)
	}
}

func TestHandlersRequireSession(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	Fetch(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodGet, "/api/v1/cart", nil, "", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.lastSession != "" {
		t.Fatal("service should not be called without a session")
	}
}

func TestAddItemPassesItemID(t *testing.T) {
	svc := &stubCartService{snap: sampleSnapshot(t)}
	rec := httptest.NewRecorder()

	AddItem(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodPost, "/api/v1/cart/items", map[string]string{"item_id": "item1"}, "sess-1", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastItem != "item1" || svc.lastSession != "sess-1" {
		t.Fatalf("unexpected call %+v", svc)
	}
}

func TestAddItemRejectsMissingItemID(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	AddItem(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodPost, "/api/v1/cart/items", map[string]string{}, "sess-1", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.lastItem != "" {
		t.Fatal("service should not be called")
	}
}

func TestAddItemMapsServiceErrors(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.Wrap(pkgerrors.CodeNotFound, session.ErrUnknownItem, "unknown item")}
	rec := httptest.NewRecorder()

	AddItem(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodPost, "/api/v1/cart/items", map[string]string{"item_id": "nope"}, "sess-1", ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestSetQuantityAcceptsExplicitZero(t *testing.T) {
	svc := &stubCartService{snap: cartsvc.New(pricing.DefaultTaxRate).Snapshot(), lastQuantity: -99}
	rec := httptest.NewRecorder()

	SetQuantity(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodPut, "/api/v1/cart/items/item1", map[string]int{"quantity": 0}, "sess-1", "item1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastQuantity != 0 || svc.lastItem != "item1" {
		t.Fatalf("unexpected call %+v", svc)
	}
}

func TestSetQuantityRequiresQuantity(t *testing.T) {
	svc := &stubCartService{}
	rec := httptest.NewRecorder()

	SetQuantity(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodPut, "/api/v1/cart/items/item1", map[string]string{}, "sess-1", "item1"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	svc := &stubCartService{snap: cartsvc.New(pricing.DefaultTaxRate).Snapshot()}

	rec := httptest.NewRecorder()
	RemoveItem(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodDelete, "/api/v1/cart/items/item2", nil, "sess-1", "item2"))
	if rec.Code != http.StatusOK || svc.lastItem != "item2" {
		t.Fatalf("remove: code %d item %q", rec.Code, svc.lastItem)
	}

	rec = httptest.NewRecorder()
	Clear(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodDelete, "/api/v1/cart", nil, "sess-1", ""))
	if rec.Code != http.StatusOK || !svc.cleared {
		t.Fatalf("clear: code %d cleared %v", rec.Code, svc.cleared)
	}
	if got := decodeCart(t, rec); len(got.Lines) != 0 || got.Total.Cents != 0 {
		t.Fatalf("expected empty cart, got %+v", got)
	}
}

func TestSetQuantityRejectsAboveLimit(t *testing.T) {
	svc := &stubCartService{lastQuantity: -99}
	rec := httptest.NewRecorder()

	SetQuantity(svc, presenter, logger.Nop())(rec, newCartRequest(http.MethodPut, "/api/v1/cart/items/item1", map[string]int64{"quantity": 9223372036854775}, "sess-1", "item1"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.lastQuantity != -99 {
		t.Fatal("service should not be called")
	}
}
