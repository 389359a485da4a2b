package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/reten-ops/pkg/db"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayOf_EachWeekday(t *testing.T) {
	// 2024-06-10 is a Monday
	monday := date(2024, time.June, 10)
	for offset := 0; offset < 7; offset++ {
		ref := monday.AddDate(0, 0, offset)
		got := MondayOf(ref)
		assert.Equal(t, monday, got, "weekday %s", ref.Weekday())
	}
}

func TestMondayOf_SundayStepsBackSixDays(t *testing.T) {
	sunday := date(2024, time.June, 16)
	assert.Equal(t, date(2024, time.June, 10), MondayOf(sunday))
}

func TestMondayOf_ZeroesTimeOfDay(t *testing.T) {
	ref := time.Date(2024, time.June, 12, 15, 42, 7, 999, time.UTC)
	got := MondayOf(ref)
	assert.Equal(t, date(2024, time.June, 10), got)
	assert.Equal(t, 0, got.Hour())
}

func TestMondayOf_Properties(t *testing.T) {
	// For any date d: MondayOf(d) is a Monday, <= d, and > d-7days
	start := date(2024, time.January, 1)
	for i := 0; i < 400; i++ {
		d := start.AddDate(0, 0, i)
		m := MondayOf(d)
		assert.Equal(t, time.Monday, m.Weekday())
		assert.False(t, m.After(d))
		assert.True(t, m.After(d.AddDate(0, 0, -7)))
	}
}

func TestShift_RoundTrip(t *testing.T) {
	w := date(2024, time.June, 10)
	assert.Equal(t, date(2024, time.June, 17), Shift(w, 1))
	assert.Equal(t, date(2024, time.June, 3), Shift(w, -1))
	assert.Equal(t, w, Shift(Shift(w, 1), -1))
	assert.Equal(t, w, Shift(Shift(w, -3), 3))
}

func TestDays_SevenConsecutive(t *testing.T) {
	w := MondayOf(date(2024, time.June, 13))
	days := Days(w)
	require.Len(t, days, 7)
	for i, d := range days {
		assert.Equal(t, w.AddDate(0, 0, i), d)
	}
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
}

func TestDays_SpansMonthBoundary(t *testing.T) {
	w := MondayOf(date(2024, time.July, 31)) // Mon Jul 29
	days := Days(w)
	assert.Equal(t, date(2024, time.July, 29), days[0])
	assert.Equal(t, date(2024, time.August, 4), days[6])
}

func TestBucketByDay_Partition(t *testing.T) {
	w := date(2024, time.June, 10)
	assignments := []db.Assignment{
		{ID: "a1", Date: "2024-06-10"},
		{ID: "a2", Date: "2024-06-10"},
		{ID: "a3", Date: "2024-06-12"},
		{ID: "a4", Date: "2024-06-16"},
	}

	buckets := BucketByDay(assignments, w)
	require.Len(t, buckets, 7)

	total := 0
	for _, b := range buckets {
		total += len(b.Assignments)
	}
	assert.Equal(t, len(assignments), total)

	assert.Len(t, buckets[0].Assignments, 2) // Monday
	assert.Len(t, buckets[2].Assignments, 1) // Wednesday
	assert.Len(t, buckets[6].Assignments, 1) // Sunday
	assert.Equal(t, "a3", buckets[2].Assignments[0].ID)
}

func TestBucketByDay_DropsOutOfWindow(t *testing.T) {
	w := date(2024, time.June, 10)
	assignments := []db.Assignment{
		{ID: "in", Date: "2024-06-11"},
		{ID: "before", Date: "2024-06-09"},
		{ID: "after", Date: "2024-06-17"},
	}

	buckets := BucketByDay(assignments, w)
	total := 0
	for _, b := range buckets {
		total += len(b.Assignments)
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, "in", buckets[1].Assignments[0].ID)
}

func TestBucketByDay_EmptyInput(t *testing.T) {
	buckets := BucketByDay(nil, date(2024, time.June, 10))
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Empty(t, b.Assignments)
	}
}
