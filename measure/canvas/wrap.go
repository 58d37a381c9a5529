package canvasmeasure

import (
	"math"
	"strings"
	"unicode"
)

// line is one wrapped row of probe text with its shaped width.
type line struct {
	content string
	width   float64
}

// wrapLines splits content greedily at the width limit. Breaks are preferred
// at whitespace runs; a token wider than the whole limit is split inside the
// token. Explicit newlines always force a break. The result has at least one
// line so an empty text still occupies one line height.
//
// widthOf is the shaping function for a string at the current face; widths
// accumulate per token rather than being re-shaped per line.
func wrapLines(content string, limit float64, widthOf func(string) float64) []line {
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []line
	var builder strings.Builder
	current := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, line{})
			}
			return
		}
		lines = append(lines, line{content: builder.String(), width: current})
		builder.Reset()
		current = 0
	}
	push := func(tok string, w float64) {
		builder.WriteString(tok)
		current += w
	}

	for _, tok := range tokenize(content) {
		if tok == "\n" {
			emit(true)
			continue
		}
		w := widthOf(tok)
		if current > 0 && current+w > limit {
			emit(false)
		}
		if w <= limit {
			push(tok, w)
			if current > limit {
				emit(false)
			}
			continue
		}
		for _, chunk := range splitByWidth(tok, limit, widthOf) {
			cw := widthOf(chunk)
			if current > 0 && current+cw > limit {
				emit(false)
			}
			push(chunk, cw)
			if current > limit {
				emit(false)
			}
		}
	}

	emit(len(lines) == 0)
	return lines
}

// tokenize splits content into runs of whitespace and non-whitespace, with
// "\n" kept as its own token.
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitByWidth cuts an overlong token into chunks that each stay within the
// limit, keeping at least one rune per chunk.
func splitByWidth(token string, limit float64, widthOf func(string) float64) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if widthOf(builder.String()) > limit && builder.Len() > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
