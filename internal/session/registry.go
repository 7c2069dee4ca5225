// Package session owns the per-customer carts. Every cart lives behind its session's
// mutex, so cart mutations and checkout for one session are serialised while different
// sessions proceed independently.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jatansg/sgfoodcourt/internal/cart"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/shopspring/decimal"
)

// Session is one shopper (or one POS terminal) and its cart.
type Session struct {
	ID        string
	Channel   enums.OrderChannel
	CreatedAt time.Time

	mu       sync.Mutex
	cart     *cart.Cart
	lastSeen time.Time
}

// RegistryParams configure a Registry.
type RegistryParams struct {
	TaxRate decimal.Decimal
	IdleTTL time.Duration
	Clock   func() time.Time
}

// Registry holds live sessions in memory.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	taxRate decimal.Decimal
	idleTTL time.Duration
	now     func() time.Time
}

// NewRegistry builds an empty registry.
func NewRegistry(params RegistryParams) *Registry {
	now := params.Clock
	if now == nil {
		now = time.Now
	}
	return &Registry{
		sessions: make(map[string]*Session),
		taxRate:  params.TaxRate,
		idleTTL:  params.IdleTTL,
		now:      now,
	}
}

// Create opens a new session with an empty cart.
func (r *Registry) Create(channel enums.OrderChannel) (*Session, error) {
	if channel == "" {
		channel = enums.OrderChannelCustomer
	}
	if !channel.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order channel").
			WithDetails(map[string]any{"channel": string(channel)})
	}
	now := r.now()
	s := &Session{
		ID:        uuid.NewString(),
		Channel:   channel,
		CreatedAt: now,
		cart:      cart.New(r.taxRate),
		lastSeen:  now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s, nil
}

// Lookup returns the live session for id.
func (r *Registry) Lookup(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, sessionNotFound(id)
	}
	return s, nil
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SweepIdle discards sessions that have not been touched for longer than the idle TTL
// and returns how many were removed. A session that is busy is left for the next sweep.
func (r *Registry) SweepIdle() int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if !s.mu.TryLock() {
			continue
		}
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Do runs fn with exclusive access to the session's cart and marks the session as seen.
// A session swept after it was looked up fails with ErrSessionNotFound and fn is not run.
func (r *Registry) Do(s *Session, fn func(c *cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.mu.RLock()
	live := r.sessions[s.ID] == s
	r.mu.RUnlock()
	if !live {
		return sessionNotFound(s.ID)
	}

	s.lastSeen = r.now()
	return fn(s.cart)
}

func sessionNotFound(id string) error {
	return pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrSessionNotFound, "session not found").
		WithDetails(map[string]any{"session_id": id})
}
