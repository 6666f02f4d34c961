package testutil

import "time"

// Date is midnight UTC on the given day. Season boundaries only care about the calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NowAt pins a collector or stats engine clock to t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
