package orders

import (
	"testing"

	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeValidate(t *testing.T) {
	assert.NoError(t, Scope{Role: enums.ActorRoleCoffeeShopOwner}.Validate())
	assert.NoError(t, Scope{Role: enums.ActorRoleStallOwner, StallID: "stall1"}.Validate())
	assert.NoError(t, Scope{Role: enums.ActorRoleCustomer, SessionID: "s1"}.Validate())

	for _, scope := range []Scope{
		{Role: enums.ActorRoleStallOwner},
		{Role: enums.ActorRoleCustomer},
		{Role: "chef"},
	} {
		err := scope.Validate()
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.CodeOf(err))
	}
}

func TestScopeRestrictOverridesCaller(t *testing.T) {
	f := Filter{StallID: "stall2", SessionID: "other"}

	owner := Scope{Role: enums.ActorRoleCoffeeShopOwner}.Restrict(f)
	assert.Equal(t, f, owner)

	stall := Scope{Role: enums.ActorRoleStallOwner, StallID: "stall1"}.Restrict(f)
	assert.Equal(t, "stall1", stall.StallID)

	customer := Scope{Role: enums.ActorRoleCustomer, SessionID: "s1"}.Restrict(f)
	assert.Equal(t, "s1", customer.SessionID)
}

func TestScopeCanRequest(t *testing.T) {
	order := Order{SessionID: "s1", Stalls: []string{"stall1"}, Status: enums.OrderStatusPending}

	customer := Scope{Role: enums.ActorRoleCustomer, SessionID: "s1"}
	assert.True(t, customer.CanRequest(order, enums.OrderStatusCancelled))
	assert.False(t, customer.CanRequest(order, enums.OrderStatusPreparing))

	stranger := Scope{Role: enums.ActorRoleCustomer, SessionID: "s2"}
	assert.False(t, stranger.CanView(order))

	stall := Scope{Role: enums.ActorRoleStallOwner, StallID: "stall1"}
	assert.True(t, stall.CanRequest(order, enums.OrderStatusPreparing))
	otherStall := Scope{Role: enums.ActorRoleStallOwner, StallID: "stall2"}
	assert.False(t, otherStall.CanRequest(order, enums.OrderStatusPreparing))

	assert.True(t, Scope{Role: enums.ActorRoleCoffeeShopOwner}.CanRequest(order, enums.OrderStatusCompleted))
}

func TestSummaryCountsEveryStatus(t *testing.T) {
	tracker := newTestTracker(nil)
	done, err := tracker.Submit(snapshotOf(pork), SubmitInput{PaymentMethod: "cash"})
	require.NoError(t, err)
	for _, next := range []enums.OrderStatus{enums.OrderStatusPreparing, enums.OrderStatusReady, enums.OrderStatusCompleted} {
		_, err = tracker.Transition(done.ID, next)
		require.NoError(t, err)
	}
	open, err := tracker.Submit(snapshotOf(laksa), SubmitInput{PaymentMethod: "cash"})
	require.NoError(t, err)

	summary := tracker.Summary(Filter{Status: enums.OrderStatusPending})

	assert.Equal(t, 2, summary.Total)
	assert.Len(t, summary.Counts, len(enums.OrderStatuses()))
	assert.Equal(t, 1, summary.Counts[enums.OrderStatusCompleted])
	assert.Equal(t, 1, summary.Counts[enums.OrderStatusPending])
	assert.Equal(t, 0, summary.Counts[enums.OrderStatusCancelled])
	assert.Equal(t, done.TotalCents, summary.CompletedRevenueCents)
	assert.Equal(t, open.TotalCents, summary.OpenValueCents)
}
