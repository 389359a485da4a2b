// Package week implements the pure date arithmetic behind the weekly
// calendar view: Monday-aligned 7-day windows and day bucketing.
package week

import (
	"time"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// DateFormat is the wire format for assignment dates
const DateFormat = "2006-01-02"

// MondayOf returns the Monday at 00:00 of the week containing ref.
// Monday = 1 ... Sunday = 0 per time.Weekday; a Sunday steps back 6 days.
func MondayOf(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	wd := int(day.Weekday())
	if wd == 0 {
		return day.AddDate(0, 0, -6)
	}
	return day.AddDate(0, 0, -(wd - 1))
}

// Shift moves a window start by whole weeks; negative delta steps back
func Shift(windowStart time.Time, deltaWeeks int) time.Time {
	return windowStart.AddDate(0, 0, 7*deltaWeeks)
}

// Days returns the ordered Monday..Sunday date sequence for a window
func Days(windowStart time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = windowStart.AddDate(0, 0, i)
	}
	return days
}

// DayBucket holds the assignments falling on one calendar day of the window
type DayBucket struct {
	Date        time.Time
	Assignments []db.Assignment
}

// BucketByDay partitions assignments into the 7 day buckets of the window
// starting at windowStart, matching on the exact date string. Assignments
// dated outside the window are dropped; callers are expected to have fetched
// only the in-window range.
func BucketByDay(assignments []db.Assignment, windowStart time.Time) []DayBucket {
	days := Days(windowStart)
	buckets := make([]DayBucket, 7)
	index := make(map[string]int, 7)
	for i, day := range days {
		buckets[i] = DayBucket{Date: day}
		index[day.Format(DateFormat)] = i
	}

	for _, a := range assignments {
		i, ok := index[a.Date]
		if !ok {
			continue
		}
		buckets[i].Assignments = append(buckets[i].Assignments, a)
	}

	return buckets
}
