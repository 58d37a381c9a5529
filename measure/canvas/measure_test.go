package canvasmeasure

import (
	"testing"

	"github.com/tdewolff/canvas"
)

func TestParseFontStyle(t *testing.T) {
	cases := []struct {
		in   string
		want canvas.FontStyle
	}{
		{"", canvas.FontRegular},
		{"regular", canvas.FontRegular},
		{"bold", canvas.FontBold},
		{"semibold", canvas.FontSemiBold},
		{"demibold", canvas.FontSemiBold},
		{"extrabold", canvas.FontExtraBold},
		{"black", canvas.FontBlack},
		{"medium", canvas.FontMedium},
		{"light", canvas.FontLight},
		{"italic", canvas.FontRegular | canvas.FontItalic},
		{"bold italic", canvas.FontBold | canvas.FontItalic},
		{"Oblique", canvas.FontRegular | canvas.FontItalic},
	}
	for _, tc := range cases {
		if got := parseFontStyle(tc.in); got != tc.want {
			t.Errorf("parseFontStyle(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAcquireWithoutFontFails(t *testing.T) {
	m := New(Options{})
	if _, err := m.Acquire("hello"); err == nil {
		t.Fatalf("Acquire should fail when no font is configured")
	}
}

func TestAcquireMissingFontFileFails(t *testing.T) {
	m := New(Options{BaseDir: t.TempDir(), Font: Resource{Path: "nope.ttf"}})
	if _, err := m.Acquire("hello"); err == nil {
		t.Fatalf("Acquire should surface the font read error")
	}
}
