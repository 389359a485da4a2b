package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/reten-ops/pkg/db"
)

func scheduleStore() *fakeStore {
	return &fakeStore{
		retenes: []db.Reten{
			{ID: "r1", Name: "Ana Ruiz", DNI: "12345678", Phone: "987654321", Status: db.StatusAvailable},
		},
	}
}

func weeklySeries(rule string) RecurringSeries {
	return RecurringSeries{
		RetenID:   "r1",
		UnitID:    "u1",
		UnitName:  "Unit A",
		RRule:     rule,
		StartTime: "08:00",
		EndTime:   "17:00",
		Reason:    "Cobertura semanal",
	}
}

func TestScheduleRecurring_WeeklyCount(t *testing.T) {
	store := scheduleStore()
	series := weeklySeries("DTSTART:20240603T000000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO;COUNT=4")

	created, err := ScheduleRecurring(context.Background(), store, testLogger, series)
	require.NoError(t, err)
	require.Len(t, created, 4)

	assert.Equal(t, "2024-06-03", created[0].Date)
	assert.Equal(t, "2024-06-10", created[1].Date)
	assert.Equal(t, "2024-06-24", created[3].Date)
	for _, a := range created {
		assert.Equal(t, db.TypePlanned, a.Type)
		assert.Equal(t, "Unit A", a.UnitName)
		assert.Equal(t, "08:00", a.StartTime)
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.ConstancyCode)
	}
	assert.Len(t, store.inserts, 4)
}

func TestScheduleRecurring_InvalidRule(t *testing.T) {
	_, err := ScheduleRecurring(context.Background(), scheduleStore(), testLogger,
		weeklySeries("NOT_AN_RRULE"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestScheduleRecurring_UnboundedRuleRejected(t *testing.T) {
	_, err := ScheduleRecurring(context.Background(), scheduleStore(), testLogger,
		weeklySeries("DTSTART:20240603T000000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bounded by COUNT or UNTIL")
}

func TestScheduleRecurring_OverCapRejected(t *testing.T) {
	// Bounded by UNTIL but decades out; rejected at the cap without
	// creating anything
	store := scheduleStore()
	_, err := ScheduleRecurring(context.Background(), store, testLogger,
		weeklySeries("DTSTART:20240603T000000Z\nRRULE:FREQ=DAILY;UNTIL=20991231T000000Z"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum is 52")
	assert.Empty(t, store.inserts)
}

func TestScheduleRecurring_ExactlyAtCapAccepted(t *testing.T) {
	store := scheduleStore()
	created, err := ScheduleRecurring(context.Background(), store, testLogger,
		weeklySeries("DTSTART:20240603T000000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO;COUNT=52"))
	require.NoError(t, err)
	assert.Len(t, created, 52)
}

func TestNextOccurrenceAfter(t *testing.T) {
	rule := "DTSTART:20240603T000000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO;COUNT=4"

	occurrence, err := NextOccurrenceAfter(rule, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", occurrence.Format("2006-01-02"))

	// Past the last occurrence there is nothing to preview
	occurrence, err = NextOccurrenceAfter(rule, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, occurrence.IsZero())

	_, err = NextOccurrenceAfter("NOT_AN_RRULE", time.Now())
	require.Error(t, err)
}

func TestScheduleRecurring_UnknownReten(t *testing.T) {
	series := weeklySeries("DTSTART:20240603T000000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO;COUNT=2")
	series.RetenID = "ghost"

	_, err := ScheduleRecurring(context.Background(), scheduleStore(), testLogger, series)
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}

func TestScheduleRecurring_PartialFailureReportsCreated(t *testing.T) {
	store := scheduleStore()
	store.failInsert = fmt.Errorf("connection refused")

	created, err := ScheduleRecurring(context.Background(), store, testLogger,
		weeklySeries("DTSTART:20240603T000000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO;COUNT=3"))
	require.Error(t, err)
	assert.Empty(t, created)
	assert.Contains(t, err.Error(), "created 0 of 3")
}
