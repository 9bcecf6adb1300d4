// Package textutil provides unicode-aware text fitting for tile labels and
// comment lines.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is appended when a string is cut.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate fits s into maxWidth columns, ending with … when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	if avail < 0 {
		return TruncateEllipsis
	}

	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + TruncateEllipsis
}

// TruncateMiddle keeps both ends of s, e.g. "very_lo…name.png", so file
// extensions stay visible.
func TruncateMiddle(s string, maxWidth int) string {
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return Truncate(s, maxWidth)
	}
	keep := maxWidth - VisualWidth(TruncateEllipsis)
	tail := keep / 2
	head := keep - tail

	runes := []rune(s)
	var suffix []rune
	w := 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > tail {
			break
		}
		suffix = append([]rune{runes[i]}, suffix...)
		w += rw
	}
	prefix := strings.TrimSuffix(Truncate(s, head+1), TruncateEllipsis)
	return prefix + TruncateEllipsis + string(suffix)
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating when
// it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// Wrap breaks s into lines of at most width columns at word boundaries.
// Words longer than width are split.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for VisualWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				cut := runewidth.Truncate(word, width, "")
				if cut == "" {
					cut = string([]rune(word)[:1])
				}
				lines = append(lines, cut)
				word = word[len(cut):]
			}
			switch {
			case line == "":
				line = word
			case VisualWidth(line)+1+VisualWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
