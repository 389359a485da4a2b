package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/reten-ops/pkg/core/notify"
	"github.com/opsdesk/reten-ops/pkg/db"
)

func notifyStore() *fakeStore {
	return &fakeStore{
		retenes: []db.Reten{
			{ID: "r1", Name: "Ana Ruiz", DNI: "12345678", Phone: "+51 987 654 321", Status: db.StatusAssigned},
		},
		assignments: []db.Assignment{
			{ID: "a1", RetenID: "r1", UnitID: "u1", UnitName: "Unit A",
				Date: "2024-06-10", StartTime: "08:00", EndTime: "17:00",
				Type: db.TypePlanned, ConstancyCode: "RET-2024-0007"},
		},
	}
}

func TestPrepareNotification(t *testing.T) {
	handoff, err := PrepareNotification(context.Background(), notifyStore(), testLogger, "", "a1")
	require.NoError(t, err)

	assert.Equal(t, "51987654321", handoff.Phone)
	assert.Contains(t, handoff.Message, "RET-2024-0007")
	assert.Contains(t, handoff.Message, "Unit A")
	assert.Contains(t, handoff.Message, "10/06/2024")
	assert.True(t, strings.HasPrefix(handoff.URL, "https://wa.me/51987654321?text="))
}

func TestPrepareNotification_AssignmentNotFound(t *testing.T) {
	_, err := PrepareNotification(context.Background(), notifyStore(), testLogger, "", "missing")
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}

func TestPrepareNotification_InvalidPhone(t *testing.T) {
	store := notifyStore()
	store.retenes[0].Phone = "123"

	_, err := PrepareNotification(context.Background(), store, testLogger, "", "a1")
	var ipe *notify.InvalidPhoneError
	assert.ErrorAs(t, err, &ipe)
}

func TestMarkNotified_SetsFlag(t *testing.T) {
	store := notifyStore()
	MarkNotified(context.Background(), store, testLogger, "a1")

	require.Len(t, store.updates, 1)
	require.NotNil(t, store.updates[0].Notified)
	assert.True(t, *store.updates[0].Notified)
	// Only the flag travels in the patch
	assert.Nil(t, store.updates[0].UnitID)
	assert.Nil(t, store.updates[0].Date)
	assert.True(t, store.assignments[0].Notified)
}

func TestMarkNotified_FailureIsSwallowed(t *testing.T) {
	store := notifyStore()
	store.failUpdate = fmt.Errorf("connection refused")

	// Best-effort bookkeeping: the failure must not surface
	MarkNotified(context.Background(), store, testLogger, "a1")
	assert.False(t, store.assignments[0].Notified)
}
