// Package pageview keeps the UI state of each mounted landing page. A view
// lives from the first render of the page until the browser leaves it or it
// sits idle past its TTL.
package pageview

import (
	"time"

	"github.com/google/uuid"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/landing"
)

// View is the state of one mounted landing page. The islands are
// independent of each other.
type View struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	Carousel landing.Carousel       `json:"carousel"`
	Billing  landing.PricingToggle  `json:"billing"`
	Menu     landing.NavMenu        `json:"menu"`
	Reveal   landing.RevealObserver `json:"reveal"`

	ChatBootstrapped bool `json:"chat_bootstrapped"`
}

func newView(now time.Time, ttl time.Duration) *View {
	return &View{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		Carousel:  landing.NewCarousel(landing.TestimonialCount()),
		Reveal:    landing.NewRevealObserver(landing.DefaultRevealThreshold),
	}
}

// ClaimChatBootstrap reports true exactly once per view.
func (v *View) ClaimChatBootstrap() bool {
	if v.ChatBootstrapped {
		return false
	}
	v.ChatBootstrapped = true
	return true
}

// CurrentTestimonial is the testimonial the carousel shows.
func (v *View) CurrentTestimonial() landing.Testimonial {
	return landing.TestimonialAt(v.Carousel.Index())
}

func (v *View) expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
