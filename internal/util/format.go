package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateText limits text to maxWidth display columns, appending "..."
// when anything was cut. Width-aware so CJK transcripts truncate cleanly.
func TruncateText(text string, maxWidth int) string {
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	cut := runewidth.Truncate(text, maxWidth, "")
	return strings.TrimRight(cut, " \t\n") + "..."
}

// TruncateTitle hard-limits a session title to maxWidth display columns
// without an ellipsis marker.
func TruncateTitle(title string, maxWidth int) string {
	return runewidth.Truncate(title, maxWidth, "")
}

// FormatNumber renders a count with K/M suffixes for log summaries.
func FormatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}
