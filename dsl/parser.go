// Package dsl parses fit-request description files. A request names the text,
// the container extents, the size bounds and the fit configuration in one
// small block, so the CLI takes a file instead of a dozen flags.
//
// Example:
//
//	fit banner v1 {
//	  text { "The quick brown fox jumps over the lazy dog" }
//	  font { src: "Inter-Regular.ttf" style: "regular" }
//	  container 320 120
//	  bounds 12 96
//	  resolution 0.5
//	  axis both
//	  wrap multi
//	}
package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Colon", Pattern: `:`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	requestParser = participle.MustBuild[Request](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// Request is the root AST node of a fit-request file.
type Request struct {
	Pos        lexer.Position `parser:"" json:"-"`
	Name       string         `parser:"Newline* 'fit' @Ident"`
	Version    string         `parser:"@Ident"`
	Statements []*Statement   `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Statement is one configuration line inside the request block.
type Statement struct {
	Text       *TextBlock      `parser:"  @@"`
	Font       *FontBlock      `parser:"| @@"`
	Container  *ContainerStmt  `parser:"| @@"`
	Bounds     *BoundsStmt     `parser:"| @@"`
	Resolution *ResolutionStmt `parser:"| @@"`
	Axis       *AxisStmt       `parser:"| @@"`
	Wrap       *WrapStmt       `parser:"| @@"`
}

// TextBlock holds the text whose size is being fitted.
type TextBlock struct {
	Value StringLiteral `parser:"'text' '{' Newline* @String Newline* '}'"`
}

// FontBlock describes the probe font by key: value entries (src, style).
type FontBlock struct {
	Entries []*FontEntry `parser:"'font' '{' Newline* ( @@ Newline* )* '}'"`
}

// FontEntry is a single key: "value" pair inside a font block.
type FontEntry struct {
	Key   string        `parser:"@Ident ':'"`
	Value StringLiteral `parser:"@String"`
}

// ContainerStmt gives the available content box as width height.
type ContainerStmt struct {
	Width  float64 `parser:"'container' @Number"`
	Height float64 `parser:"@Number"`
}

// BoundsStmt gives the inclusive font size range as min max.
type BoundsStmt struct {
	Min float64 `parser:"'bounds' @Number"`
	Max float64 `parser:"@Number"`
}

// ResolutionStmt gives the minimum search step.
type ResolutionStmt struct {
	Value float64 `parser:"'resolution' @Number"`
}

// AxisStmt names the fit axis: width, height or both.
type AxisStmt struct {
	Value string `parser:"'axis' @Ident"`
}

// WrapStmt names the wrap policy: single or multi.
type WrapStmt struct {
	Value string `parser:"'wrap' @Ident"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a request from an io.Reader.
func Parse(r io.Reader) (*Request, error) {
	return requestParser.Parse("", r)
}

// ParseString parses a request from a string.
func ParseString(input string) (*Request, error) {
	return requestParser.ParseString("", input)
}

// Compiled is the flattened, validated form of a Request, still free of any
// dependency on the fitting core: axis and wrap stay textual here.
type Compiled struct {
	Name            string
	Text            string
	ContainerWidth  float64
	ContainerHeight float64
	MinSize         float64
	MaxSize         float64
	Resolution      float64
	Axis            string
	Wrap            string
	FontSrc         string
	FontStyle       string
}

// Compile flattens the statement list and checks that the required parts
// (text, container, bounds) are all present. Later duplicates win, matching
// how the statements read top to bottom.
func (r *Request) Compile() (*Compiled, error) {
	c := &Compiled{Name: r.Name}
	var haveText, haveContainer, haveBounds bool
	for _, st := range r.Statements {
		switch {
		case st.Text != nil:
			c.Text = string(st.Text.Value)
			haveText = true
		case st.Font != nil:
			for _, e := range st.Font.Entries {
				switch e.Key {
				case "src":
					c.FontSrc = string(e.Value)
				case "style":
					c.FontStyle = string(e.Value)
				default:
					return nil, fmt.Errorf("dsl: unknown font key %q", e.Key)
				}
			}
		case st.Container != nil:
			c.ContainerWidth = st.Container.Width
			c.ContainerHeight = st.Container.Height
			haveContainer = true
		case st.Bounds != nil:
			c.MinSize = st.Bounds.Min
			c.MaxSize = st.Bounds.Max
			haveBounds = true
		case st.Resolution != nil:
			c.Resolution = st.Resolution.Value
		case st.Axis != nil:
			c.Axis = st.Axis.Value
		case st.Wrap != nil:
			c.Wrap = st.Wrap.Value
		}
	}
	if !haveText {
		return nil, fmt.Errorf("dsl: request %s is missing a text block", r.Name)
	}
	if !haveContainer {
		return nil, fmt.Errorf("dsl: request %s is missing a container statement", r.Name)
	}
	if !haveBounds {
		return nil, fmt.Errorf("dsl: request %s is missing a bounds statement", r.Name)
	}
	return c, nil
}
