package housekeeping

import (
	"context"
	"fmt"

	"github.com/jatansg/sgfoodcourt/pkg/logger"
	"github.com/jatansg/sgfoodcourt/pkg/metrics"
)

const sessionSweepJobName = "session-sweep"

type idleSweeper interface {
	SweepIdle() int
	Len() int
}

// SessionSweepJobParams configure the idle cart sweeper.
type SessionSweepJobParams struct {
	Logger   *logger.Logger
	Sessions idleSweeper
	Metrics  *metrics.SessionMetrics
}

type sessionSweepJob struct {
	logg     *logger.Logger
	sessions idleSweeper
	metrics  *metrics.SessionMetrics
}

// NewSessionSweepJob builds the job that discards carts idle past their TTL.
func NewSessionSweepJob(params SessionSweepJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session registry required")
	}
	return &sessionSweepJob{
		logg:     params.Logger,
		sessions: params.Sessions,
		metrics:  params.Metrics,
	}, nil
}

func (j *sessionSweepJob) Name() string { return sessionSweepJobName }

func (j *sessionSweepJob) Run(ctx context.Context) error {
	removed := j.sessions.SweepIdle()
	live := j.sessions.Len()
	j.metrics.AddSwept(removed)
	j.metrics.SetLive(live)
	if removed > 0 {
		j.logg.Info(j.logg.WithFields(ctx, map[string]any{
			"removed": removed,
			"live":    live,
		}), "idle sessions discarded")
	}
	return nil
}
