package validate

import (
	"strings"
	"time"
)

// Layouts accepted for Loan.endDate. The store keeps it as text; older rows
// carry a bare date, newer ones a full timestamp.
var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// EndDate parses a stored end date, interpreting zone-less values as UTC.
func EndDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range endDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Formats splits a book's comma-joined format set, trimming whitespace and
// dropping empty entries.
func Formats(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// UserID validates a user reference from a store row.
func UserID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", false
	}
	return s, true
}
