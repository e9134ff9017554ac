// Package enclosure resolves byte sizes of podcast audio files.
package enclosure

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/nDmitry/podfeed/internal/app"
	"github.com/nDmitry/podfeed/internal/cache"
)

const sharedKeyPrefix = "enclosure:size:"

// Prober fetches the size of a single enclosure from its host.
type Prober interface {
	Probe(ctx context.Context, url string) (string, error)
}

// Resolver returns enclosure sizes, asking the Prober at most once per URL
// during its lifetime.
type Resolver struct {
	prober Prober
	// Sizes seen in this run.
	local *cache.Memory
	// Optional cache shared between runs.
	shared    cache.Cache
	sharedTTL time.Duration
	mu        sync.Mutex
}

type Option func(*Resolver)

// WithShared adds a second cache tier consulted after a local miss.
func WithShared(c cache.Cache, ttl time.Duration) Option {
	return func(r *Resolver) {
		r.shared = c
		r.sharedTTL = ttl
	}
}

func NewResolver(p Prober, opts ...Option) *Resolver {
	r := &Resolver{prober: p, local: cache.NewMemory()}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Size returns the byte size of the enclosure at url as a decimal string.
// Probe errors are returned unchanged and nothing is cached for them.
func (r *Resolver) Size(ctx context.Context, url string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if size, err := r.local.Get(ctx, url); err == nil {
		return string(size), nil
	}

	if size, ok := r.fromShared(ctx, url); ok {
		_ = r.local.Set(ctx, url, []byte(size), 0)
		return size, nil
	}

	size, err := r.prober.Probe(ctx, url)

	if err != nil {
		return "", err
	}

	_ = r.local.Set(ctx, url, []byte(size), 0)
	r.toShared(ctx, url, size)

	return size, nil
}

func (r *Resolver) fromShared(ctx context.Context, url string) (string, bool) {
	if r.shared == nil {
		return "", false
	}

	size, err := r.shared.Get(ctx, sharedKeyPrefix+url)

	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			app.Logger().Warn("Shared size cache read failed", slog.String("url", url), slog.Any("error", err))
		}
		return "", false
	}

	return string(size), true
}

func (r *Resolver) toShared(ctx context.Context, url, size string) {
	// Unknown sizes stay local.
	if r.shared == nil || size == "" {
		return
	}

	if err := r.shared.Set(ctx, sharedKeyPrefix+url, []byte(size), r.sharedTTL); err != nil {
		app.Logger().Warn("Shared size cache write failed", slog.String("url", url), slog.Any("error", err))
	}
}
