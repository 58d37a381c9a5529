package canvasmeasure

import (
	"testing"
	"unicode/utf8"
)

// runeWidth shapes every rune at width 1, making expected break points easy
// to read off the test input.
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func contents(lines []line) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.content
	}
	return out
}

func assertLines(t *testing.T, got []line, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("line count = %d (%q), want %d (%q)", len(got), contents(got), len(want), want)
	}
	for i := range want {
		if got[i].content != want[i] {
			t.Fatalf("line %d = %q, want %q (all: %q)", i, got[i].content, want[i], contents(got))
		}
	}
}

func TestWrapLinesBreaksAtWhitespace(t *testing.T) {
	got := wrapLines("aaa bbb ccc", 7, runeWidth)
	assertLines(t, got, "aaa bbb", " ccc")
	if got[0].width != 7 {
		t.Fatalf("first line width = %g, want 7", got[0].width)
	}
}

func TestWrapLinesExplicitNewlineForcesBreak(t *testing.T) {
	got := wrapLines("a\nb", 100, runeWidth)
	assertLines(t, got, "a", "b")
}

func TestWrapLinesCarriageReturnsIgnored(t *testing.T) {
	got := wrapLines("a\r\nb", 100, runeWidth)
	assertLines(t, got, "a", "b")
}

func TestWrapLinesSplitsOverlongToken(t *testing.T) {
	got := wrapLines("abcdefgh", 3, runeWidth)
	assertLines(t, got, "abc", "def", "gh")
}

func TestWrapLinesEmptyTextOccupiesOneLine(t *testing.T) {
	got := wrapLines("", 10, runeWidth)
	assertLines(t, got, "")
}

func TestWrapLinesNoLimitKeepsOneLine(t *testing.T) {
	got := wrapLines("aaa bbb ccc", 0, runeWidth)
	assertLines(t, got, "aaa bbb ccc")
}

func TestWrapLinesFitsExactly(t *testing.T) {
	got := wrapLines("aaa bbb", 7, runeWidth)
	assertLines(t, got, "aaa bbb")
}

func TestWrapLinesWidthsAccumulatePerToken(t *testing.T) {
	got := wrapLines("ab cd", 10, runeWidth)
	assertLines(t, got, "ab cd")
	if got[0].width != 5 {
		t.Fatalf("width = %g, want 5", got[0].width)
	}
}
