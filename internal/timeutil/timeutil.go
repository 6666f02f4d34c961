package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsCompletedSeason reports whether year is strictly before the calendar year of now.
func IsCompletedSeason(year int, now time.Time) bool {
	return year < now.Year()
}

// IsInProgressWeek reports whether week is the current week of a season that is still open.
func IsInProgressWeek(week, currentWeek int, seasonOpen bool) bool {
	return seasonOpen && week == currentWeek
}

// Years returns start..end inclusive; empty when start > end.
func Years(start, end int) []int {
	if start > end {
		return []int{}
	}
	out := make([]int, 0, end-start+1)
	for y := start; y <= end; y++ {
		out = append(out, y)
	}
	return out
}
