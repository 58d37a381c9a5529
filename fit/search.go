package fit

import (
	"math"
	"unicode/utf8"
)

const (
	// maxSearchSteps caps the binary search regardless of how wide the
	// bounds are, so a resolve stays a bounded number of probes.
	maxSearchSteps = 20

	// charAreaFactor is the empirical glyph area claimed per character,
	// relative to fontSize². It only seeds the multi-line search near its
	// optimum; a poor seed costs extra probes, never a wrong result.
	charAreaFactor = 0.4

	// guessDamping shrinks the area estimate so the first multi-line probe
	// tends to land just below the optimum.
	guessDamping = 0.8
)

// searchSingleLine finds the largest font size at which the text fits on one
// unbroken line. The ceiling is probed first: when Bounds.Max already fits
// there is nothing to search.
func (r *Resolver) searchSingleLine(probe Probe, req Request) (float64, error) {
	m, err := probe.Measure(req.Bounds.Max, req.Container.Width, req.Wrap)
	if err != nil {
		return 0, err
	}
	if Fits(m, req.Container, req.Axis) {
		return req.Bounds.Max, nil
	}
	return r.searchRange(probe, req, req.Bounds.Min, req.Bounds.Max)
}

// searchMultiLine estimates a starting size from the container area and the
// text length, then searches up or down from that estimate depending on
// whether it fits. The same ceiling short-circuit as the single-line search
// applies first.
func (r *Resolver) searchMultiLine(probe Probe, req Request) (float64, error) {
	m, err := probe.Measure(req.Bounds.Max, req.Container.Width, req.Wrap)
	if err != nil {
		return 0, err
	}
	if Fits(m, req.Container, req.Axis) {
		return req.Bounds.Max, nil
	}

	guess := initialGuess(req)
	m, err = probe.Measure(guess, req.Container.Width, req.Wrap)
	if err != nil {
		return 0, err
	}
	if Fits(m, req.Container, req.Axis) {
		return r.searchRange(probe, req, guess, req.Bounds.Max)
	}
	return r.searchRange(probe, req, req.Bounds.Min, guess)
}

// searchRange binary-searches the largest fitting size in [low, high],
// stepping by the request resolution. On a fit the lower edge advances past
// the midpoint by exactly one resolution, biasing toward the highest fitting
// value; the result precision is therefore bounded by the resolution, not
// exact. The loop additionally stops after maxSearchSteps probes.
func (r *Resolver) searchRange(probe Probe, req Request, low, high float64) (float64, error) {
	best := low
	for steps := 0; high-low > req.Resolution && steps < maxSearchSteps; steps++ {
		mid := (low + high) / 2
		m, err := probe.Measure(mid, req.Container.Width, req.Wrap)
		if err != nil {
			return 0, err
		}
		if Fits(m, req.Container, req.Axis) {
			best = mid
			low = mid + req.Resolution
		} else {
			high = mid - req.Resolution
		}
	}
	return best, nil
}

// initialGuess seeds the multi-line search: the container area divided by the
// area the text roughly claims per character yields a squared font size.
func initialGuess(req Request) float64 {
	n := utf8.RuneCountInString(req.Text)
	if n == 0 {
		n = 1
	}
	est := math.Sqrt(req.Container.Width * req.Container.Height / (float64(n) * charAreaFactor))
	return req.Bounds.Clamp(est * guessDamping)
}
