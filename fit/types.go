package fit

import (
	"fmt"
	"strings"
)

// This file defines the value types shared by the predicate, the searches and
// the resolver. All sizes are plain float64 in whatever unit the measurement
// backend reports; the core never converts units.

// Axis selects which container dimension(s) measured text must not exceed.
type Axis int

const (
	AxisWidth Axis = iota
	AxisHeight
	AxisBoth
)

// String returns the lowercase name used by the DSL and the CLI.
func (a Axis) String() string {
	switch a {
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	case AxisBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseAxis maps a textual axis name to an Axis value.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "width":
		return AxisWidth, nil
	case "height":
		return AxisHeight, nil
	case "both", "":
		return AxisBoth, nil
	default:
		return AxisBoth, fmt.Errorf("fit: unknown axis %q", s)
	}
}

// Wrap selects the search strategy and the probe styling intent: single-line
// text never breaks (truncation is the host's concern), multi-line text wraps
// at the container width and grows vertically.
type Wrap int

const (
	WrapSingleLine Wrap = iota
	WrapMultiLine
)

func (w Wrap) String() string {
	switch w {
	case WrapSingleLine:
		return "single"
	case WrapMultiLine:
		return "multi"
	default:
		return "unknown"
	}
}

// ParseWrap maps a textual wrap-policy name to a Wrap value.
func ParseWrap(s string) (Wrap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "single-line", "nowrap":
		return WrapSingleLine, nil
	case "multi", "multi-line", "":
		return WrapMultiLine, nil
	default:
		return WrapMultiLine, fmt.Errorf("fit: unknown wrap policy %q", s)
	}
}

// Bounds is the inclusive [Min, Max] range the resolved font size must lie in.
type Bounds struct {
	Min float64
	Max float64
}

// Clamp forces v into the bounds.
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Extent is the available content box of a container, after any padding or
// border accounting done by the caller.
type Extent struct {
	Width  float64
	Height float64
}

// Measurement is the box a probe occupied at a candidate font size.
type Measurement struct {
	Width  float64
	Height float64
}
