// Package fit resolves the largest font size, within bounds, at which a block
// of text fits a container. Text measurement is delegated to an injected
// Prober so the core stays independent of any concrete rendering surface.
package fit

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// DefaultResolution is the search step used when a request leaves
// Resolution unset.
const DefaultResolution = 0.5

// keySampleLen bounds the portion of the text that enters the cache key.
// Texts are sampled as the first keySampleLen bytes plus the total length,
// so two long texts sharing both collide and reuse each other's entry.
const keySampleLen = 50

// Request carries one resolution task. All extents and sizes share the unit
// of the measurement backend.
type Request struct {
	Text       string
	Container  Extent
	Bounds     Bounds
	Resolution float64 // minimum search step; DefaultResolution when <= 0
	Axis       Axis
	Wrap       Wrap
}

// Resolver is the public entry point. It dispatches to the single- or
// multi-line search per the request's wrap policy, consults the cache and
// clamps the result into bounds.
//
// A Resolver runs its work synchronously within the calling goroutine and
// performs a bounded number of probes per call. It holds no locks; hosts
// calling from several goroutines must serialize calls or wrap the shared
// cache externally.
type Resolver struct {
	prober Prober
	cache  SizeCache
	log    zerolog.Logger
}

// NewResolver wires a resolver from its dependencies.
func NewResolver(opts Options) (*Resolver, error) {
	if opts.Prober == nil {
		return nil, fmt.Errorf("fit: missing measurement backend Prober")
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Resolver{
		prober: opts.Prober,
		cache:  opts.Cache,
		log:    log,
	}, nil
}

// Resolve returns the largest font size in [Bounds.Min, Bounds.Max] at which
// the request's text fits its container, to within the request resolution.
//
// Bounds with Min < 0 or Min > Max are rejected. A degenerate container
// (either extent <= 0) short-circuits to Bounds.Min without probing: nothing
// renders into zero space, and the floor is the only honest answer. Probe
// acquisition or measurement failures propagate unchanged; no fallback size
// is synthesized.
func (r *Resolver) Resolve(req Request) (float64, error) {
	if req.Bounds.Min < 0 || req.Bounds.Min > req.Bounds.Max {
		return 0, fmt.Errorf("fit: invalid bounds [%g, %g]", req.Bounds.Min, req.Bounds.Max)
	}
	if req.Resolution <= 0 {
		req.Resolution = DefaultResolution
	}
	if req.Container.Width <= 0 || req.Container.Height <= 0 {
		return req.Bounds.Min, nil
	}

	key := cacheKey(req)
	if r.cache != nil {
		if size, ok := r.cache.Get(key); ok {
			// The key excludes bounds, so a hit written by a request with
			// a wider range may lie outside this request's range.
			size = req.Bounds.Clamp(size)
			r.log.Debug().Str("key", key).Float64("size", size).Msg("cache hit")
			return size, nil
		}
	}

	probe, err := r.prober.Acquire(req.Text)
	if err != nil {
		return 0, fmt.Errorf("fit: acquire probe: %w", err)
	}
	defer probe.Release()

	var size float64
	switch req.Wrap {
	case WrapSingleLine:
		size, err = r.searchSingleLine(probe, req)
	default:
		size, err = r.searchMultiLine(probe, req)
	}
	if err != nil {
		return 0, fmt.Errorf("fit: measure: %w", err)
	}

	size = req.Bounds.Clamp(size)
	if r.cache != nil {
		r.cache.Put(key, size)
	}
	r.log.Debug().
		Str("wrap", req.Wrap.String()).
		Str("axis", req.Axis.String()).
		Float64("size", size).
		Msg("resolved")
	return size, nil
}

// cacheKey derives a deterministic key from the rounded container extents,
// the text sample, the axis and the wrap policy.
func cacheKey(req Request) string {
	sample := req.Text
	if len(sample) > keySampleLen {
		sample = sample[:keySampleLen]
	}
	return fmt.Sprintf("%d|%d|%s|%d|%s|%s",
		int(math.Round(req.Container.Width)),
		int(math.Round(req.Container.Height)),
		sample, len(req.Text), req.Axis, req.Wrap)
}
