package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/server"
)

// Module provides the background scheduler and its tasks.
var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

// TaskParams contains dependencies for creating scheduled tasks
type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Views     *pageview.Store
	Limiter   *server.ViewRateLimiter
	Log       *slog.Logger
	Cfg       *config.Config
}

func RegisterTasks(p TaskParams) error {
	if err := p.Scheduler.AddIntervalTask("view_sweep",
		p.Cfg.Views.SweepInterval, NewViewSweepTask(p.Views, p.Log).Run); err != nil {
		return err
	}

	if err := p.Scheduler.AddIntervalTask("rate_limiter_prune",
		p.Cfg.Views.SweepInterval, NewLimiterPruneTask(p.Limiter, p.Cfg.Views.TTL, p.Log).Run); err != nil {
		return err
	}

	p.Log.Info("registered scheduled tasks",
		slog.Any("tasks", p.Scheduler.ListTasks()))
	return nil
}

func RegisterSchedulerLifecycle(lc fx.Lifecycle, scheduler *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
