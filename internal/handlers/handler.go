package handlers

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/chatwidget"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
)

// Jobs is the background scheduler as seen by the health check.
type Jobs interface {
	IsRunning() bool
	ListTasks() []string
}

// Handler serves the landing page, its view interactions and the widget
// config API.
type Handler struct {
	views   *pageview.Store
	chat    *chatwidget.Bootstrapper
	jobs    Jobs
	log     *slog.Logger
	startAt time.Time
}

func NewHandler(views *pageview.Store, chat *chatwidget.Bootstrapper, jobs Jobs, log *slog.Logger) *Handler {
	return &Handler{
		views:   views,
		chat:    chat,
		jobs:    jobs,
		log:     log.With(logger.Scope("handlers")),
		startAt: time.Now(),
	}
}
