// Package checkout turns a session's cart into a tracked order.
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/jatansg/sgfoodcourt/internal/cart"
	"github.com/jatansg/sgfoodcourt/internal/orders"
	"github.com/jatansg/sgfoodcourt/internal/session"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

type sessionStore interface {
	Lookup(id string) (*session.Session, error)
	Do(s *session.Session, fn func(c *cart.Cart) error) error
}

type orderSubmitter interface {
	Submit(snap cart.Snapshot, input orders.SubmitInput) (orders.Order, error)
}

// Service executes checkout.
type Service interface {
	Execute(ctx context.Context, sessionID string, input Input) (orders.Order, error)
}

// Input is what the shopper supplies at the payment step.
type Input struct {
	PaymentMethod string
	Note          string
	CustomerName  string
	PickupSlot    string
	// Channel overrides the session's channel when set.
	Channel enums.OrderChannel
}

type service struct {
	sessions sessionStore
	orders   orderSubmitter
	logg     *logger.Logger
}

// NewService builds the checkout service.
func NewService(sessions sessionStore, submitter orderSubmitter, logg *logger.Logger) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if submitter == nil {
		return nil, fmt.Errorf("order submitter required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{sessions: sessions, orders: submitter, logg: logg}, nil
}

// Execute submits the session's cart and clears it, both under the session lock, so
// nothing can be added between the snapshot and the clear. A failed submission leaves
// the cart untouched.
func (s *service) Execute(ctx context.Context, sessionID string, input Input) (orders.Order, error) {
	if strings.TrimSpace(sessionID) == "" {
		return orders.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	sess, err := s.sessions.Lookup(sessionID)
	if err != nil {
		return orders.Order{}, err
	}
	channel := input.Channel
	if channel == "" {
		channel = sess.Channel
	}

	var order orders.Order
	err = s.sessions.Do(sess, func(c *cart.Cart) error {
		submitted, err := s.orders.Submit(c.Snapshot(), orders.SubmitInput{
			PaymentMethod: input.PaymentMethod,
			Note:          input.Note,
			CustomerName:  input.CustomerName,
			PickupSlot:    input.PickupSlot,
			SessionID:     sess.ID,
			Channel:       channel,
		})
		if err != nil {
			return err
		}
		c.Clear()
		order = submitted
		return nil
	})
	if err != nil {
		return orders.Order{}, err
	}

	logCtx := s.logg.WithOrderID(s.logg.WithSessionID(ctx, sess.ID), order.ID.String())
	logCtx = s.logg.WithFields(logCtx, map[string]any{
		"order_number": order.Number,
		"total_cents":  order.TotalCents,
		"channel":      string(order.Channel),
	})
	s.logg.Info(logCtx, "checkout.order_submitted")
	return order, nil
}
