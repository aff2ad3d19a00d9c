package chatwidget

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/metrics"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

var Module = fx.Module("chatwidget",
	fx.Provide(NewBootstrapper),
)

// Claimer is a page view that can be bootstrapped at most once.
type Claimer interface {
	ClaimChatBootstrap() bool
}

// Embed is everything a page needs to load and start the widget.
type Embed struct {
	ScriptURL string
	StyleURL  string
	// Config is the createChat argument. json.Marshal escapes <, > and &,
	// so it can be placed inside a script element as is.
	Config json.RawMessage
}

// Bootstrapper hands out the widget embed once per page view.
type Bootstrapper struct {
	payload Payload
	embed   Embed
	log     *slog.Logger
}

func NewBootstrapper(cfg *config.Config, log *slog.Logger) (*Bootstrapper, error) {
	return newBootstrapper(cfg.Chat, DefaultPayload(cfg.Chat), log)
}

func newBootstrapper(cfg config.ChatConfig, payload Payload, log *slog.Logger) (*Bootstrapper, error) {
	log = log.With(logger.Scope("chatwidget"))

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("chat widget payload: %w", err)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode chat widget payload: %w", err)
	}

	if payload.WebhookURL == "" {
		log.Warn("N8N_WEBHOOK_URL is not set; the chat widget will not reach a backend")
	}

	return &Bootstrapper{
		payload: payload,
		embed: Embed{
			ScriptURL: cfg.ScriptURL,
			StyleURL:  cfg.StyleURL,
			Config:    raw,
		},
		log: log,
	}, nil
}

// Bootstrap returns the embed if view has not been bootstrapped yet, and nil
// on every later call for the same view.
func (b *Bootstrapper) Bootstrap(view Claimer) *Embed {
	if !view.ClaimChatBootstrap() {
		return nil
	}
	metrics.ChatBootstraps.Inc()
	b.log.Debug("chat widget bootstrapped")

	e := b.embed
	return &e
}

func (b *Bootstrapper) Payload() Payload {
	return b.payload
}

// ConfigJSON is the encoded payload served to external embedders.
func (b *Bootstrapper) ConfigJSON() json.RawMessage {
	return b.embed.Config
}
