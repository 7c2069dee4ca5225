package session

import (
	"context"

	"github.com/jatansg/sgfoodcourt/internal/cart"
	"github.com/jatansg/sgfoodcourt/internal/catalog"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

// Service exposes cart operations keyed by session id.
type Service interface {
	Open(ctx context.Context, channel enums.OrderChannel) (Info, error)
	Cart(ctx context.Context, sessionID string) (cart.Snapshot, error)
	AddItem(ctx context.Context, sessionID, itemID string) (cart.Snapshot, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (cart.Snapshot, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (cart.Snapshot, error)
	Clear(ctx context.Context, sessionID string) (cart.Snapshot, error)
}

// Info describes a freshly opened session.
type Info struct {
	ID      string             `json:"session_id"`
	Channel enums.OrderChannel `json:"channel"`
}

type service struct {
	catalog  *catalog.Catalog
	registry *Registry
	logg     *logger.Logger
}

// NewService wires the cart service.
func NewService(cat *catalog.Catalog, registry *Registry, logg *logger.Logger) (Service, error) {
	if cat == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog required")
	}
	if registry == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session registry required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{catalog: cat, registry: registry, logg: logg}, nil
}

func (s *service) Open(ctx context.Context, channel enums.OrderChannel) (Info, error) {
	sess, err := s.registry.Create(channel)
	if err != nil {
		return Info{}, err
	}
	s.logg.Info(s.logg.WithSessionID(ctx, sess.ID), "session.opened")
	return Info{ID: sess.ID, Channel: sess.Channel}, nil
}

func (s *service) Cart(_ context.Context, sessionID string) (cart.Snapshot, error) {
	return s.mutate(sessionID, func(*cart.Cart) error { return nil })
}

// AddItem only accepts items that can currently be ordered: the item must be available
// and its stall trading.
func (s *service) AddItem(ctx context.Context, sessionID, itemID string) (cart.Snapshot, error) {
	item, ok := s.catalog.Item(itemID)
	if !ok {
		return cart.Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrUnknownItem, "catalog item not found").
			WithDetails(map[string]any{"item_id": itemID})
	}
	if !s.catalog.Orderable(item) {
		return cart.Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrItemUnavailable, "item is not available").
			WithDetails(map[string]any{"item_id": itemID, "stall_id": item.StallID})
	}
	snap, err := s.mutate(sessionID, func(c *cart.Cart) error {
		if c.Full(item.ID) {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, cart.ErrInvalidQuantity, "line is at the per-item limit").
				WithDetails(map[string]any{"item_id": itemID, "max": cart.MaxQuantity})
		}
		c.AddItem(item)
		return nil
	})
	if err == nil {
		s.logg.Debug(s.logg.WithSessionID(ctx, sessionID), "cart.item_added")
	}
	return snap, err
}

func (s *service) SetQuantity(_ context.Context, sessionID, itemID string, quantity int) (cart.Snapshot, error) {
	return s.mutate(sessionID, func(c *cart.Cart) error {
		return c.SetQuantity(itemID, quantity)
	})
}

// RemoveItem is idempotent: removing an absent line is not an error.
func (s *service) RemoveItem(_ context.Context, sessionID, itemID string) (cart.Snapshot, error) {
	return s.mutate(sessionID, func(c *cart.Cart) error {
		c.RemoveItem(itemID)
		return nil
	})
}

func (s *service) Clear(_ context.Context, sessionID string) (cart.Snapshot, error) {
	return s.mutate(sessionID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *service) mutate(sessionID string, fn func(c *cart.Cart) error) (cart.Snapshot, error) {
	sess, err := s.registry.Lookup(sessionID)
	if err != nil {
		return cart.Snapshot{}, err
	}
	var snap cart.Snapshot
	err = s.registry.Do(sess, func(c *cart.Cart) error {
		if err := fn(c); err != nil {
			return err
		}
		snap = c.Snapshot()
		return nil
	})
	return snap, err
}
