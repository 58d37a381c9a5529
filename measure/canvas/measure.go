// Package canvasmeasure measures text via github.com/tdewolff/canvas. It is
// the concrete backend behind fit.Prober: a probe renders nothing visible, it
// only shapes text with a real font face and reports the occupied box.
package canvasmeasure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/textfit/fit"
)

// Options configures the canvas measurer.
type Options struct {
	// BaseDir resolves relative font paths.
	BaseDir string

	// Font is the face probes are shaped with. Required (by Bytes or Path).
	Font Resource

	// Style is a face style description such as "regular", "bold" or
	// "semibold italic".
	Style string
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// Measurer loads the configured font lazily and hands out probes bound to it.
type Measurer struct {
	baseDir string
	font    Resource
	style   canvas.FontStyle

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var _ fit.Prober = (*Measurer)(nil)

// New creates a measurer; the font is not loaded until the first Acquire.
func New(opts Options) *Measurer {
	return &Measurer{
		baseDir: opts.BaseDir,
		font:    opts.Font,
		style:   parseFontStyle(opts.Style),
	}
}

// Acquire implements fit.Prober. It fails when the configured font cannot be
// loaded; the error propagates to the resolve call untouched.
func (m *Measurer) Acquire(text string) (fit.Probe, error) {
	family, err := m.ensureFamily()
	if err != nil {
		return nil, err
	}
	return &Probe{text: text, family: family, style: m.style}, nil
}

func (m *Measurer) ensureFamily() (*canvas.FontFamily, error) {
	m.fontMu.Lock()
	defer m.fontMu.Unlock()

	if m.family != nil {
		return m.family, nil
	}
	data, err := m.fontBytes()
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("textfit-probe")
	if err := family.LoadFont(data, 0, m.style); err != nil {
		return nil, fmt.Errorf("canvasmeasure: load font: %w", err)
	}
	m.family = family
	return family, nil
}

func (m *Measurer) fontBytes() ([]byte, error) {
	if len(m.font.Bytes) > 0 {
		return m.font.Bytes, nil
	}
	if m.font.Path == "" {
		return nil, fmt.Errorf("canvasmeasure: no font configured")
	}
	path := m.font.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("canvasmeasure: read font %s: %w", m.font.Path, err)
	}
	return data, nil
}

// Probe implements fit.Probe against one text and one font family. It keeps
// no state between measurements besides the shared family; faces are created
// per candidate size.
type Probe struct {
	text     string
	family   *canvas.FontFamily
	style    canvas.FontStyle
	released bool
}

var _ fit.Probe = (*Probe)(nil)

// Measure shapes the probe text at fontSize and reports its box. Under
// fit.WrapSingleLine newlines collapse to spaces and the text stays on one
// line regardless of maxWidth; under fit.WrapMultiLine the text wraps
// greedily at maxWidth and height grows with the line count.
func (p *Probe) Measure(fontSize, maxWidth float64, wrap fit.Wrap) (fit.Measurement, error) {
	if p.released {
		return fit.Measurement{}, fmt.Errorf("canvasmeasure: measure on released probe")
	}
	if fontSize <= 0 {
		return fit.Measurement{}, fmt.Errorf("canvasmeasure: non-positive font size %g", fontSize)
	}

	face := p.family.Face(fontSize, canvas.Black, p.style, canvas.FontNormal)
	lineHeight := face.Metrics().LineHeight
	if lineHeight <= 0 {
		lineHeight = fontSize
	}

	if wrap == fit.WrapSingleLine {
		flat := strings.Join(strings.FieldsFunc(p.text, func(r rune) bool {
			return r == '\n' || r == '\r'
		}), " ")
		return fit.Measurement{Width: face.TextWidth(flat), Height: lineHeight}, nil
	}

	lines := wrapLines(p.text, maxWidth, face.TextWidth)
	widest := 0.0
	for _, ln := range lines {
		if ln.width > widest {
			widest = ln.width
		}
	}
	return fit.Measurement{Width: widest, Height: float64(len(lines)) * lineHeight}, nil
}

// Release implements fit.Probe.
func (p *Probe) Release() { p.released = true }

func parseFontStyle(style string) canvas.FontStyle {
	if style == "" {
		return canvas.FontRegular
	}
	s := strings.ToLower(style)
	result := canvas.FontRegular
	switch {
	case strings.Contains(s, "black"):
		result = canvas.FontBlack
	case strings.Contains(s, "extrabold"):
		result = canvas.FontExtraBold
	case strings.Contains(s, "bold"):
		result = canvas.FontBold
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"):
		result = canvas.FontSemiBold
	case strings.Contains(s, "medium"):
		result = canvas.FontMedium
	case strings.Contains(s, "light"):
		result = canvas.FontLight
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}
