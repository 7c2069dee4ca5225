package housekeeping

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/jatansg/sgfoodcourt/internal/orders"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

const (
	staleOrderJobName      = "stale-order-nudge"
	defaultStaleOrderAfter = 30 * time.Minute
)

type orderLister interface {
	List(filter orders.Filter) iter.Seq[orders.Order]
}

// StaleOrderJobParams configure the stale order nudge.
type StaleOrderJobParams struct {
	Logger *logger.Logger
	Orders orderLister
	After  time.Duration
	Clock  func() time.Time
}

type staleOrderJob struct {
	logg   *logger.Logger
	orders orderLister
	after  time.Duration
	now    func() time.Time
}

// NewStaleOrderJob builds the job that warns about orders left pending too long.
func NewStaleOrderJob(params StaleOrderJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order lister required")
	}
	after := params.After
	if after <= 0 {
		after = defaultStaleOrderAfter
	}
	now := params.Clock
	if now == nil {
		now = time.Now
	}
	return &staleOrderJob{logg: params.Logger, orders: params.Orders, after: after, now: now}, nil
}

func (j *staleOrderJob) Name() string { return staleOrderJobName }

func (j *staleOrderJob) Run(ctx context.Context) error {
	_, err := j.nudge(ctx)
	return err
}

func (j *staleOrderJob) nudge(ctx context.Context) (int, error) {
	cutoff := j.now().Add(-j.after)
	stale := 0
	for order := range j.orders.List(orders.Filter{Status: enums.OrderStatusPending}) {
		if err := ctx.Err(); err != nil {
			return stale, err
		}
		if !order.CreatedAt.Before(cutoff) {
			continue
		}
		stale++
		orderCtx := j.logg.WithOrderID(ctx, order.ID.String())
		orderCtx = j.logg.WithFields(orderCtx, map[string]any{
			"order_number": order.Number,
			"stalls":       order.Stalls,
			"waiting_min":  int(j.now().Sub(order.CreatedAt).Minutes()),
		})
		j.logg.Warn(orderCtx, "order still pending")
	}
	return stale, nil
}
