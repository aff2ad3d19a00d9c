package handlers

import (
	"net/http"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/chatwidget"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/components"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/apperror"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

// LandingPage mounts a new page view and renders the full document. The chat
// widget bootstrap is claimed while mounting, so it is part of this render
// and of no other.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	var embed *chatwidget.Embed
	view, err := h.views.Mount(r.Context(), func(v *pageview.View) {
		embed = h.chat.Bootstrap(v)
	})
	if err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewInternal("Failed to mount page view", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := components.LandingPage(view, embed).Render(w); err != nil {
		h.log.Warn("render landing page", logger.Error(err))
	}
}
