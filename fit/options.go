package fit

import "github.com/rs/zerolog"

// Options configures the dependencies of a Resolver, such as the measurement
// backend and the result cache.
type Options struct {
	// Prober is the text-shaping backend probes are acquired from. Required.
	Prober Prober

	// Cache memoizes resolved sizes. Optional; nil disables caching.
	Cache SizeCache

	// Logger receives debug diagnostics. Optional; nil means no output.
	Logger *zerolog.Logger
}

// Prober acquires measurement probes from the host rendering surface. A probe
// is detached from any visible layout: measuring never mutates the text the
// caller actually displays.
type Prober interface {
	// Acquire prepares an off-screen probe for the given text. The caller
	// must Release the returned probe on every exit path.
	Acquire(text string) (Probe, error)
}

// Probe measures its text at candidate font sizes.
type Probe interface {
	// Measure reports the box occupied by the text rendered at fontSize.
	// maxWidth constrains wrapping under WrapMultiLine so height grows with
	// the wrapped line count; the container height is never imposed on the
	// probe. Under WrapSingleLine the text is laid out on one unbroken line.
	Measure(fontSize, maxWidth float64, wrap Wrap) (Measurement, error)

	// Release discards the probe. Further Measure calls are invalid.
	Release()
}

// SizeCache memoizes resolved font sizes. A miss or a stale entry never
// produces a wrong answer, only a recomputation.
type SizeCache interface {
	Get(key string) (float64, bool)
	Put(key string, size float64)
}
