package pageview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/buntdb"
	"go.uber.org/fx"

	"github.com/AydinTheFirst/n8n-chat-widget/internal/config"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/landing"
	"github.com/AydinTheFirst/n8n-chat-widget/internal/metrics"
	"github.com/AydinTheFirst/n8n-chat-widget/pkg/logger"
)

var Module = fx.Module("pageview",
	fx.Provide(NewStore),
	fx.Invoke(registerStoreLifecycle),
)

const keyPrefix = "view:"

// Unmount reasons, used as the metrics label.
const (
	ReasonClient  = "client"
	ReasonExpired = "expired"
)

var ErrViewNotFound = errors.New("page view not found")

// Store holds mounted views in an in-memory buntdb database. Every mutation
// is a read-modify-write inside one write transaction, so operations on a
// view never interleave.
type Store struct {
	db  *buntdb.DB
	ttl time.Duration
	now func() time.Time
	log *slog.Logger

	mu        sync.RWMutex
	onUnmount []func(viewID string)
}

func NewStore(cfg *config.Config, log *slog.Logger) (*Store, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("open view store: %w", err)
	}
	return &Store{
		db:  db,
		ttl: cfg.Views.TTL,
		now: time.Now,
		log: log.With(logger.Scope("pageview")),
	}, nil
}

func registerStoreLifecycle(lc fx.Lifecycle, s *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Close()
		},
	})
}

// OnUnmount registers fn to run after a view is unmounted by the client or
// swept.
func (s *Store) OnUnmount(fn func(viewID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUnmount = append(s.onUnmount, fn)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Mount creates a fresh view, starts watching the page sections and runs
// init on it before it is stored.
func (s *Store) Mount(ctx context.Context, init func(*View)) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := newView(s.now(), s.ttl)
	v.Reveal.Observe(landing.Sections()...)
	if init != nil {
		init(v)
	}

	err := s.db.Update(func(tx *buntdb.Tx) error {
		return put(tx, v)
	})
	if err != nil {
		return nil, fmt.Errorf("mount view: %w", err)
	}

	metrics.ViewsMounted.Inc()
	metrics.ActiveViews.Inc()
	s.log.Debug("view mounted", slog.String("view_id", v.ID))
	return v, nil
}

func (s *Store) Get(ctx context.Context, id string) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var v *View
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		v, err = s.load(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Exists reports whether id names a mounted view that has not expired.
func (s *Store) Exists(ctx context.Context, id string) bool {
	_, err := s.Get(ctx, id)
	return err == nil
}

// Update applies fn to the stored view and saves the result, extending the
// view's lifetime. If fn fails nothing is saved.
func (s *Store) Update(ctx context.Context, id string, fn func(*View) error) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var v *View
	err := s.db.Update(func(tx *buntdb.Tx) error {
		var err error
		v, err = s.load(tx, id)
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
		v.ExpiresAt = s.now().Add(s.ttl)
		return put(tx, v)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Unmount removes the view and tears down its reveal observer.
func (s *Store) Unmount(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var v *View
	err := s.db.Update(func(tx *buntdb.Tx) error {
		val, err := tx.Delete(key(id))
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrViewNotFound, id)
		}
		if err != nil {
			return err
		}
		v, err = decode(val)
		return err
	})
	if err != nil {
		return err
	}

	s.teardown(v, ReasonClient)
	return nil
}

// Sweep unmounts every view idle past its TTL, and any record that no longer
// decodes, and returns how many it removed.
func (s *Store) Sweep(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := s.now()
	var (
		expired []*View
		corrupt []string
	)
	err := s.db.Update(func(tx *buntdb.Tx) error {
		var keys []string
		err := tx.AscendKeys(keyPrefix+"*", func(k, val string) bool {
			v, err := decode(val)
			switch {
			case err != nil:
				keys = append(keys, k)
				corrupt = append(corrupt, strings.TrimPrefix(k, keyPrefix))
			case v.expired(now):
				keys = append(keys, k)
				expired = append(expired, v)
			}
			return true
		})
		if err != nil {
			return err
		}
		for _, k := range keys {
			if _, err := tx.Delete(k); err != nil && !errors.Is(err, buntdb.ErrNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep views: %w", err)
	}

	for _, v := range expired {
		s.teardown(v, ReasonExpired)
	}
	for _, id := range corrupt {
		s.log.Warn("swept undecodable view", slog.String("view_id", id))
		s.release(id, ReasonExpired)
	}
	return len(expired) + len(corrupt), nil
}

// Count returns the number of stored views, including expired ones not yet
// swept.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n := 0
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(keyPrefix+"*", func(_, _ string) bool {
			n++
			return true
		})
	})
	return n, err
}

func (s *Store) teardown(v *View, reason string) {
	if v.Reveal.Disconnect() {
		s.log.Debug("reveal observer disconnected",
			slog.String("view_id", v.ID),
			slog.Any("revealed", v.Reveal.RevealedSections()))
	}
	s.release(v.ID, reason)
}

// release updates the view metrics and notifies the unmount listeners.
func (s *Store) release(viewID, reason string) {
	metrics.ViewsUnmounted.WithLabelValues(reason).Inc()
	metrics.ActiveViews.Dec()
	s.log.Debug("view unmounted",
		slog.String("view_id", viewID),
		slog.String("reason", reason))

	s.mu.RLock()
	listeners := s.onUnmount
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(viewID)
	}
}

func (s *Store) load(tx *buntdb.Tx, id string) (*View, error) {
	if id == "" || strings.ContainsAny(id, "*?") {
		return nil, fmt.Errorf("%w: %q", ErrViewNotFound, id)
	}
	val, err := tx.Get(key(id))
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	v, err := decode(val)
	if err != nil {
		return nil, err
	}
	if v.expired(s.now()) {
		return nil, fmt.Errorf("%w: %s expired", ErrViewNotFound, id)
	}
	return v, nil
}

func put(tx *buntdb.Tx, v *View) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode view %s: %w", v.ID, err)
	}
	_, _, err = tx.Set(key(v.ID), string(data), nil)
	return err
}

func decode(val string) (*View, error) {
	v := &View{}
	if err := json.Unmarshal([]byte(val), v); err != nil {
		return nil, fmt.Errorf("decode view: %w", err)
	}
	return v, nil
}

func key(id string) string {
	return keyPrefix + id
}
