package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
)

type mountedViews map[string]bool

func (m mountedViews) Exists(_ context.Context, id string) bool {
	return m[id]
}

func newTestLimiter(rpm, burst int, mounted ...string) (*ViewRateLimiter, *time.Time) {
	views := mountedViews{}
	for _, id := range mounted {
		views[id] = true
	}

	cfg := &config.Config{RateLimit: config.RateLimitConfig{RequestsPerMinute: rpm, Burst: burst}}
	l := newViewRateLimiter(cfg, views, slog.Default())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestViewRateLimiter_Burst(t *testing.T) {
	l, now := newTestLimiter(60, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("a"), "request %d", i)
	}
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "views have separate buckets")

	*now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token refills per second at 60/min")
	assert.False(t, l.Allow("a"))
}

func TestViewRateLimiter_Prune(t *testing.T) {
	l, now := newTestLimiter(60, 3)

	l.Allow("old")
	*now = now.Add(10 * time.Minute)
	l.Allow("fresh")

	assert.Equal(t, 1, l.Prune(5*time.Minute))
	assert.Equal(t, 1, l.Len())

	l.Forget("fresh")
	assert.Equal(t, 0, l.Len())
}

func limitedRouter(l *ViewRateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Route("/views/{id}", func(r chi.Router) {
		r.Use(l.Middleware)
		r.Post("/menu/toggle", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func postToggle(h http.Handler, viewID string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/views/"+viewID+"/menu/toggle", nil))
	return rec
}

func TestViewRateLimiter_Middleware(t *testing.T) {
	l, _ := newTestLimiter(60, 1, "v1")
	r := limitedRouter(l)

	require.Equal(t, http.StatusOK, postToggle(r, "v1").Code)

	rec := postToggle(r, "v1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"rate_limited"`)
}

func TestViewRateLimiter_UnknownViewsGetNoBucket(t *testing.T) {
	l, _ := newTestLimiter(60, 1, "v1")
	r := limitedRouter(l)

	for i := 0; i < 500; i++ {
		rec := postToggle(r, fmt.Sprintf("bogus-%d", i))
		assert.Equal(t, http.StatusOK, rec.Code, "unknown views reach the handler")
	}
	assert.Equal(t, 0, l.Len())

	postToggle(r, "v1")
	assert.Equal(t, 1, l.Len())
}
