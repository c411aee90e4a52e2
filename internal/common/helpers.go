package common

import (
	"strconv"
	"strings"
)

// SplitIntoLines breaks s into lines of at most maxlen characters.
// Example: SplitIntoLines("abcdef", 4) = "abcd\nef"
func SplitIntoLines(s string, maxlen int) string {
	if maxlen <= 0 || len(s) <= maxlen {
		return s
	}

	lines := make([]string, 0, len(s)/maxlen+1)
	for start := 0; start < len(s); start += maxlen {
		end := min(start+maxlen, len(s))
		lines = append(lines, s[start:end])
	}
	return strings.Join(lines, "\n")
}

// FormatPercent formats a progress value without trailing zeros
// Example: FormatPercent(62.5) = "62.5%"
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// ProgressBar draws p (0..100) as a bar of width cells
func ProgressBar(p float64, width int) string {
	filled := int(p / 100 * float64(width))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
