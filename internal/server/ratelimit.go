package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/metrics"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/pageview"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/apperror"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

// ViewChecker reports whether a page view is currently mounted.
type ViewChecker interface {
	Exists(ctx context.Context, id string) bool
}

// ViewRateLimiter keeps one token bucket per mounted page view. Requests for
// unknown views get no bucket.
type ViewRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*viewLimiter
	limit    rate.Limit
	burst    int
	views    ViewChecker
	now      func() time.Time
	log      *slog.Logger
}

type viewLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewViewRateLimiter creates the limiter and drops a view's bucket when the
// store unmounts or sweeps the view.
func NewViewRateLimiter(cfg *config.Config, views *pageview.Store, log *slog.Logger) *ViewRateLimiter {
	l := newViewRateLimiter(cfg, views, log)
	views.OnUnmount(l.Forget)
	return l
}

func newViewRateLimiter(cfg *config.Config, views ViewChecker, log *slog.Logger) *ViewRateLimiter {
	return &ViewRateLimiter{
		limiters: make(map[string]*viewLimiter),
		limit:    rate.Every(time.Minute / time.Duration(cfg.RateLimit.RequestsPerMinute)),
		burst:    cfg.RateLimit.Burst,
		views:    views,
		now:      time.Now,
		log:      log.With(logger.Scope("ratelimit")),
	}
}

// Allow reports whether another request for viewID may proceed now.
func (l *ViewRateLimiter) Allow(viewID string) bool {
	now := l.now()

	l.mu.Lock()
	vl, ok := l.limiters[viewID]
	if !ok {
		vl = &viewLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[viewID] = vl
	}
	vl.lastSeen = now
	l.mu.Unlock()

	return vl.limiter.AllowN(now, 1)
}

// Forget drops the bucket of viewID.
func (l *ViewRateLimiter) Forget(viewID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, viewID)
}

// Prune drops buckets not used within idle and returns how many it dropped.
func (l *ViewRateLimiter) Prune(idle time.Duration) int {
	cutoff := l.now().Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for id, vl := range l.limiters {
		if vl.lastSeen.Before(cutoff) {
			delete(l.limiters, id)
			n++
		}
	}
	return n
}

func (l *ViewRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware rejects requests for a view whose bucket is empty. It reads the
// view id from the {id} route parameter. Requests for views that are not
// mounted pass through untouched so the handler can answer 404.
func (l *ViewRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewID := chi.URLParam(r, "id")
		if !l.views.Exists(r.Context(), viewID) {
			next.ServeHTTP(w, r)
			return
		}
		if !l.Allow(viewID) {
			metrics.RateLimited.Inc()
			l.log.Debug("view rate limited", slog.String("view_id", viewID))

			w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
			apperror.WriteJSON(w, r, l.log, apperror.ErrRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *ViewRateLimiter) retryAfter() int {
	secs := int(time.Duration(float64(time.Second) / float64(l.limit)).Seconds())
	return max(secs, 1)
}
