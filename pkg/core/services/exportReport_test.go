package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/reten-ops/pkg/clients/sheetsclient"
)

type fakePublisher struct {
	spreadsheetID string
	published     *sheetsclient.MonthlyReportSheet
}

func (f *fakePublisher) PublishMonthlyReport(spreadsheetID string, report *sheetsclient.MonthlyReportSheet) error {
	f.spreadsheetID = spreadsheetID
	f.published = report
	return nil
}

type fakeMailer struct {
	to, subject, body string
}

func (f *fakeMailer) SendEmail(to, subject, body string) error {
	f.to = to
	f.subject = subject
	f.body = body
	return nil
}

func TestExportMonthlyReport(t *testing.T) {
	publisher := &fakePublisher{}
	err := ExportMonthlyReport(context.Background(), reportStore(), publisher, testLogger,
		"sheet123", 2024, time.June)
	require.NoError(t, err)

	assert.Equal(t, "sheet123", publisher.spreadsheetID)
	require.NotNil(t, publisher.published)
	assert.Equal(t, 2024, publisher.published.Year)
	assert.Equal(t, time.June, publisher.published.Month)
	require.Len(t, publisher.published.Rows, 1)

	row := publisher.published.Rows[0]
	require.Len(t, row, len(sheetsclient.ReportHeader))
	assert.Equal(t, "Ana Ruiz", row[0])
	assert.Equal(t, "12345678", row[1])
	assert.Equal(t, "987654321", row[2])
	assert.Equal(t, 2, row[3])
	assert.InDelta(t, 13.0, row[4].(float64), 1e-9)
	assert.Equal(t, 2, row[5])
	assert.Equal(t,
		"2024-06-10 Unit A (08:00-17:00); 2024-06-10 Unit B (18:00-22:00)",
		row[6])
}

func TestExportMonthlyReport_NoSpreadsheetConfigured(t *testing.T) {
	err := ExportMonthlyReport(context.Background(), reportStore(), &fakePublisher{}, testLogger,
		"", 2024, time.June)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no report spreadsheet configured")
}

func TestEmailMonthlyReport(t *testing.T) {
	mailer := &fakeMailer{}
	err := EmailMonthlyReport(context.Background(), reportStore(), mailer, testLogger,
		"jefe@example.com", 2024, time.June)
	require.NoError(t, err)

	assert.Equal(t, "jefe@example.com", mailer.to)
	assert.Equal(t, "Reporte mensual de retenes 2024-06", mailer.subject)
	assert.Contains(t, mailer.body, "Ana Ruiz")
	assert.Contains(t, mailer.body, "2 asignaciones")
	assert.Contains(t, mailer.body, "13.0 horas")
	assert.Contains(t, mailer.body, "10/06/2024 Unit A (08:00-17:00)")
}

func TestEmailMonthlyReport_EmptyMonth(t *testing.T) {
	mailer := &fakeMailer{}
	err := EmailMonthlyReport(context.Background(), reportStore(), mailer, testLogger,
		"jefe@example.com", 2024, time.January)
	require.NoError(t, err)
	assert.Contains(t, mailer.body, "Sin asignaciones en el mes.")
}
