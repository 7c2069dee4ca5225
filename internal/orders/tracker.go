package orders

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jatansg/sgfoodcourt/internal/cart"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
)

const defaultNumberPrefix = "SG"

// Observer is told about lifecycle events after they are applied. Implementations
// must not call back into the tracker.
type Observer interface {
	OrderSubmitted(order Order)
	OrderTransitioned(from, to enums.OrderStatus)
	TransitionRejected(from, to enums.OrderStatus)
}

// TrackerParams configure a Tracker. Every field is optional.
type TrackerParams struct {
	Clock        func() time.Time
	NewID        func() uuid.UUID
	NumberPrefix string
	Observer     Observer
}

// Tracker owns every submitted order and enforces the status lifecycle. It is the
// single ownership domain for orders; one mutex serialises submissions and
// transitions so two status updates on the same order cannot interleave.
type Tracker struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*record
	created  []*record
	sequence int

	now      func() time.Time
	newID    func() uuid.UUID
	prefix   string
	observer Observer
}

type record struct {
	order Order
}

// NewTracker builds an empty tracker.
func NewTracker(params TrackerParams) *Tracker {
	t := &Tracker{
		byID:     make(map[uuid.UUID]*record),
		now:      params.Clock,
		newID:    params.NewID,
		prefix:   strings.TrimSpace(params.NumberPrefix),
		observer: params.Observer,
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.newID == nil {
		t.newID = uuid.New
	}
	if t.prefix == "" {
		t.prefix = defaultNumberPrefix
	}
	return t
}

// SubmitInput carries everything beyond the cart that an order records.
type SubmitInput struct {
	PaymentMethod string
	Note          string
	CustomerName  string
	PickupSlot    string
	SessionID     string
	Channel       enums.OrderChannel
}

// Submit freezes snap into a new pending order. The cart the snapshot came from is left
// alone; clearing it is the caller's job.
func (t *Tracker) Submit(snap cart.Snapshot, input SubmitInput) (Order, error) {
	if snap.IsEmpty() {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrEmptyCart, "cannot submit an empty cart")
	}
	rawMethod := strings.TrimSpace(input.PaymentMethod)
	if rawMethod == "" {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrMissingPaymentMethod, "payment method is required")
	}
	method, err := enums.ParsePaymentMethod(rawMethod)
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrUnsupportedPaymentMethod, "payment method is not supported").
			WithDetails(map[string]any{"payment_method": rawMethod})
	}
	channel := input.Channel
	if channel == "" {
		channel = enums.OrderChannelCustomer
	}
	if !channel.IsValid() {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order channel").
			WithDetails(map[string]any{"channel": string(channel)})
	}

	lines := make([]Line, 0, len(snap.Lines))
	stalls := make([]string, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		lines = append(lines, Line{
			ItemID:         l.Item.ID,
			Name:           l.Item.Name,
			StallID:        l.Item.StallID,
			Category:       l.Item.Category,
			UnitPriceCents: l.Item.UnitPriceCents,
			Quantity:       l.Quantity,
			TotalCents:     l.TotalCents(),
		})
		if !slices.Contains(stalls, l.Item.StallID) {
			stalls = append(stalls, l.Item.StallID)
		}
	}

	t.mu.Lock()
	now := t.now()
	// CreatedAt is strictly increasing so that it orders the listing on its own.
	if n := len(t.created); n > 0 {
		if last := t.created[n-1].order.CreatedAt; !now.After(last) {
			now = last.Add(time.Nanosecond)
		}
	}
	t.sequence++
	order := Order{
		ID:            t.newID(),
		Number:        fmt.Sprintf("%s%03d", t.prefix, t.sequence),
		SessionID:     input.SessionID,
		Channel:       channel,
		Status:        enums.OrderStatusPending,
		Lines:         lines,
		Stalls:        stalls,
		SubtotalCents: snap.Totals.SubtotalCents,
		TaxCents:      snap.Totals.TaxCents,
		TotalCents:    snap.Totals.TotalCents,
		TaxRate:       snap.TaxRate,
		PaymentMethod: method,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		PickupSlot:    strings.TrimSpace(input.PickupSlot),
		Note:          strings.TrimSpace(input.Note),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, dup := t.byID[order.ID]; dup {
		t.sequence--
		t.mu.Unlock()
		return Order{}, pkgerrors.New(pkgerrors.CodeConflict, "order id collision")
	}
	rec := &record{order: order}
	t.byID[order.ID] = rec
	t.created = append(t.created, rec)
	out := rec.order.clone()
	t.mu.Unlock()

	if t.observer != nil {
		t.observer.OrderSubmitted(out)
	}
	return out, nil
}

// Transition moves an order to target if the lifecycle allows it.
func (t *Tracker) Transition(orderID uuid.UUID, target enums.OrderStatus) (Order, error) {
	t.mu.Lock()
	rec, ok := t.byID[orderID]
	if !ok {
		t.mu.Unlock()
		return Order{}, notFound(orderID)
	}
	from := rec.order.Status
	if !CanTransition(from, target) {
		t.mu.Unlock()
		if t.observer != nil {
			t.observer.TransitionRejected(from, target)
		}
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeStateConflict, &IllegalTransitionError{From: from, To: target}, "illegal status transition").
			WithDetails(map[string]any{
				"order_id": orderID.String(),
				"from":     string(from),
				"to":       string(target),
				"allowed":  NextStatuses(from),
			})
	}

	now := t.now()
	rec.order.Status = target
	rec.order.UpdatedAt = now
	switch target {
	case enums.OrderStatusCompleted:
		rec.order.FulfilledAt = &now
	case enums.OrderStatusCancelled:
		rec.order.CancelledAt = &now
	}
	out := rec.order.clone()
	t.mu.Unlock()

	if t.observer != nil {
		t.observer.OrderTransitioned(from, target)
	}
	return out, nil
}

// Get returns a copy of the order.
func (t *Tracker) Get(orderID uuid.UUID) (Order, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.byID[orderID]
	if !ok {
		return Order{}, notFound(orderID)
	}
	return rec.order.clone(), nil
}

// List yields orders matching filter, newest submission first. Nothing is read until the
// sequence is ranged over, and each range starts from the newest order again. Orders
// submitted while a range is in progress are not included in it; status changes are.
func (t *Tracker) List(filter Filter) iter.Seq[Order] {
	return func(yield func(Order) bool) {
		t.mu.RLock()
		recs := slices.Clone(t.created)
		t.mu.RUnlock()

		for i := len(recs) - 1; i >= 0; i-- {
			t.mu.RLock()
			order := recs[i].order.clone()
			t.mu.RUnlock()
			if !filter.Matches(order) {
				continue
			}
			if !yield(order) {
				return
			}
		}
	}
}

// Len is the number of orders ever submitted.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.created)
}

func notFound(orderID uuid.UUID) error {
	return pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrOrderNotFound, "order not found").
		WithDetails(map[string]any{"order_id": orderID.String()})
}
