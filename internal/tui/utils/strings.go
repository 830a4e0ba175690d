package utils

import (
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the given display width, appending
// an ellipsis when anything was cut.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// TruncatePathLeft truncates a path to the given display width keeping the
// tail, which carries the file name and is what the user scans for.
func TruncatePathLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.TruncateLeft(s, runewidth.StringWidth(s)-width+1, "…")
}
