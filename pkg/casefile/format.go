package casefile

import (
	"strings"
	"time"
)

// dateLayouts are the input formats the wizard is known to produce.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"January 2, 2006",
}

// FormatDate normalizes a date string to YYYY-MM-DD. Unparseable input is
// returned unchanged so the validation engine can report it instead of the
// transformer guessing.
func FormatDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return trimmed
}
