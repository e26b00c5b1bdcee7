package util

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Round rounds the exact binary value of x to the given number of decimal
// places, halves to even. 69.0/60 is slightly below 1.15 and rounds to 1.1.
func Round(x float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}

	return rounded
}

// Percent returns part/total*100 rounded to a whole number. A non-positive
// total yields zero.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}

	return int(math.RoundToEven(float64(part) / float64(total) * 100))
}

// Deref returns *p, or zero when p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}

// DaysAgo returns the local calendar date n days before t in layout.
func DaysAgo(t time.Time, n int, layout string) string {
	return t.AddDate(0, 0, -n).Format(layout)
}

// DatePrefix returns the calendar-date portion of an ISO-8601 local timestamp
// such as "2024-01-04T08:00:00" or "2024-01-04 08:00:00".
func DatePrefix(timestamp string) string {
	if i := strings.IndexAny(timestamp, "T "); i >= 0 {
		return timestamp[:i]
	}

	return timestamp
}
