package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

// Sweeper removes page views idle past their TTL.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// ViewSweepTask unmounts expired page views.
type ViewSweepTask struct {
	views Sweeper
	log   *slog.Logger
}

func NewViewSweepTask(views Sweeper, log *slog.Logger) *ViewSweepTask {
	return &ViewSweepTask{
		views: views,
		log:   log.With(logger.Scope("view-sweep")),
	}
}

func (t *ViewSweepTask) Run(ctx context.Context) error {
	n, err := t.views.Sweep(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		t.log.Info("swept expired page views", slog.Int("count", n))
	}
	return nil
}

// Pruner drops per-view state that has not been used for a while.
type Pruner interface {
	Prune(idle time.Duration) int
}

// LimiterPruneTask drops rate limiter buckets of views idle past their TTL.
type LimiterPruneTask struct {
	limiter Pruner
	idle    time.Duration
	log     *slog.Logger
}

func NewLimiterPruneTask(limiter Pruner, idle time.Duration, log *slog.Logger) *LimiterPruneTask {
	return &LimiterPruneTask{
		limiter: limiter,
		idle:    idle,
		log:     log.With(logger.Scope("limiter-prune")),
	}
}

func (t *LimiterPruneTask) Run(ctx context.Context) error {
	if n := t.limiter.Prune(t.idle); n > 0 {
		t.log.Debug("pruned rate limiter buckets", slog.Int("count", n))
	}
	return nil
}
