package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/components"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/landing"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/metrics"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/apperror"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

// RegisterViewRoutes adds the interaction routes of a mounted view. r must be
// routed under a pattern with an {id} parameter.
func (h *Handler) RegisterViewRoutes(r chi.Router) {
	r.Post("/testimonials/next", h.NextTestimonial)
	r.Post("/testimonials/previous", h.PreviousTestimonial)
	r.Post("/testimonials/{index}", h.JumpToTestimonial)
	r.Post("/pricing/toggle", h.ToggleBilling)
	r.Post("/menu/toggle", h.ToggleMenu)
	r.Post("/reveal/{section}", h.RevealSection)
	r.Post("/unmount", h.Unmount)
}

func (h *Handler) NextTestimonial(w http.ResponseWriter, r *http.Request) {
	h.interact(w, r, "carousel", "next",
		func(v *pageview.View) { v.Carousel.Next() },
		testimonialFragment)
}

func (h *Handler) PreviousTestimonial(w http.ResponseWriter, r *http.Request) {
	h.interact(w, r, "carousel", "previous",
		func(v *pageview.View) { v.Carousel.Previous() },
		testimonialFragment)
}

func (h *Handler) JumpToTestimonial(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 || index >= landing.TestimonialCount() {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("Testimonial index out of range").
			WithDetails(map[string]any{"index": chi.URLParam(r, "index")}))
		return
	}

	h.interact(w, r, "carousel", "jump",
		func(v *pageview.View) { v.Carousel.JumpTo(index) },
		testimonialFragment)
}

func (h *Handler) ToggleBilling(w http.ResponseWriter, r *http.Request) {
	h.interact(w, r, "pricing", "toggle",
		func(v *pageview.View) { v.Billing.Toggle() },
		func(v *pageview.View) g.Node { return components.PricingContent(v.Billing) })
}

func (h *Handler) ToggleMenu(w http.ResponseWriter, r *http.Request) {
	h.interact(w, r, "menu", "toggle",
		func(v *pageview.View) { v.Menu.Toggle() },
		func(v *pageview.View) g.Node { return components.MobileMenu(v.Menu.IsOpen()) })
}

// RevealResponse reports whether an intersection revealed the section.
type RevealResponse struct {
	Section  string `json:"section"`
	Revealed bool   `json:"revealed"`
}

// RevealSection records that a section crossed into the viewport. The ratio
// is read from the form or query and defaults to fully visible.
func (h *Handler) RevealSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !landing.IsSection(section) {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("Unknown section").
			WithDetails(map[string]any{"section": section}))
		return
	}

	ratio := 1.0
	if raw := r.FormValue("ratio"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || f < 0 || f > 1 {
			apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("ratio must be a number between 0 and 1"))
			return
		}
		ratio = f
	}

	var revealed bool
	_, err := h.views.Update(r.Context(), chi.URLParam(r, "id"), func(v *pageview.View) error {
		revealed = v.Reveal.Intersect(section, ratio)
		return nil
	})
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	metrics.Interactions.WithLabelValues("reveal", "intersect").Inc()
	if revealed {
		metrics.SectionsRevealed.WithLabelValues(section).Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(RevealResponse{Section: section, Revealed: revealed})
}

// Unmount ends the view. Browsers send it as a beacon when leaving the page.
func (h *Handler) Unmount(w http.ResponseWriter, r *http.Request) {
	if err := h.views.Unmount(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeViewError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func testimonialFragment(v *pageview.View) g.Node {
	return components.TestimonialCard(v.Carousel)
}

// interact applies a state transition to the view named in the route and
// responds with the re-rendered fragment of the island it touched.
func (h *Handler) interact(w http.ResponseWriter, r *http.Request, island, action string,
	apply func(*pageview.View), fragment func(*pageview.View) g.Node) {
	view, err := h.views.Update(r.Context(), chi.URLParam(r, "id"), func(v *pageview.View) error {
		apply(v)
		return nil
	})
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	metrics.Interactions.WithLabelValues(island, action).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := fragment(view).Render(w); err != nil {
		h.log.Warn("render fragment",
			logger.Error(err),
			slog.String("island", island))
	}
}

func (h *Handler) writeViewError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, pageview.ErrViewNotFound) {
		err = apperror.ErrViewNotFound.WithInternal(err)
	}
	apperror.WriteJSON(w, r, h.log, err)
}
