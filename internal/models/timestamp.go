package models

import "time"

// TimeLayout is the stored timestamp format: local-time ISO-8601 with second
// precision. Lexicographic order on these strings matches chronological
// order, which reporting relies on for BETWEEN range queries.
const TimeLayout = "2006-01-02T15:04:05"

// FormatTime renders t in the stored timestamp format.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
