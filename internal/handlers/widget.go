package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes adds the JSON API used by external embedders.
func (h *Handler) RegisterAPIRoutes(r chi.Router) {
	r.Get("/widget-config", h.WidgetConfig)
}

// WidgetConfig serves the createChat payload the landing page boots the
// widget with. It does not claim any page view.
func (h *Handler) WidgetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.chat.ConfigJSON())
}
