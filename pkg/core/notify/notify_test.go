package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/reten-ops/pkg/db"
)

func testReten() db.Reten {
	return db.Reten{
		ID:     "r1",
		Name:   "Ana Ruiz",
		DNI:    "12345678",
		Phone:  "+51 987-654 321",
		Status: db.StatusAvailable,
	}
}

func testAssignment() db.Assignment {
	return db.Assignment{
		ID:            "a1",
		RetenID:       "r1",
		UnitID:        "u1",
		UnitName:      "Unit A",
		Date:          "2024-06-10",
		StartTime:     "08:00",
		EndTime:       "17:00",
		Type:          db.TypePlanned,
		ConstancyCode: "RET-2024-0001",
	}
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "international with separators", raw: "+51 987-654 321", want: "51987654321"},
		{name: "plain digits", raw: "987654321", want: "987654321"},
		{name: "parentheses and dots", raw: "(01) 987.654.321", want: "01987654321"},
		{name: "too short", raw: "123", wantErr: true},
		{name: "eight digits", raw: "12345678", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "letters only", raw: "no-phone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePhone(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var ipe *InvalidPhoneError
				assert.ErrorAs(t, err, &ipe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompose_MessageContents(t *testing.T) {
	handoff, err := Compose(testReten(), testAssignment(), "")
	require.NoError(t, err)

	assert.Equal(t, "51987654321", handoff.Phone)
	assert.Contains(t, handoff.Message, "CONSTANCIA N° RET-2024-0001")
	assert.Contains(t, handoff.Message, "Retén: Ana Ruiz")
	assert.Contains(t, handoff.Message, "DNI: 12345678")
	assert.Contains(t, handoff.Message, "Unidad: Unit A")
	assert.Contains(t, handoff.Message, "Fecha: 10/06/2024")
	assert.Contains(t, handoff.Message, "Horario: 08:00 - 17:00")
	assert.Contains(t, handoff.Message, "Tipo: Programada")
	assert.NotContains(t, handoff.Message, "Motivo:")
}

func TestCompose_SectionOrder(t *testing.T) {
	a := testAssignment()
	a.Reason = "Cobertura por licencia"
	handoff, err := Compose(testReten(), a, "")
	require.NoError(t, err)

	lines := strings.Split(handoff.Message, "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "CONSTANCIA"))
	assert.True(t, strings.HasPrefix(lines[1], "Retén:"))
	assert.True(t, strings.HasPrefix(lines[2], "DNI:"))
	assert.True(t, strings.HasPrefix(lines[3], "Unidad:"))
	assert.True(t, strings.HasPrefix(lines[4], "Fecha:"))
	assert.True(t, strings.HasPrefix(lines[5], "Horario:"))
	assert.True(t, strings.HasPrefix(lines[6], "Tipo:"))
	assert.True(t, strings.HasPrefix(lines[7], "Motivo:"))
}

func TestCompose_ConstancyPlaceholder(t *testing.T) {
	a := testAssignment()
	a.ConstancyCode = ""
	handoff, err := Compose(testReten(), a, "")
	require.NoError(t, err)
	assert.Contains(t, handoff.Message, "CONSTANCIA N° PENDIENTE")
}

func TestCompose_ImmediateTypeLabel(t *testing.T) {
	a := testAssignment()
	a.Type = db.TypeImmediate
	handoff, err := Compose(testReten(), a, "")
	require.NoError(t, err)
	assert.Contains(t, handoff.Message, "Tipo: Inmediata")
}

func TestCompose_DeepLink(t *testing.T) {
	handoff, err := Compose(testReten(), testAssignment(), "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(handoff.URL, "https://wa.me/51987654321?text="), handoff.URL)
	// Message must be URL-encoded: no raw spaces or newlines
	query := strings.TrimPrefix(handoff.URL, "https://wa.me/51987654321?text=")
	assert.NotContains(t, query, " ")
	assert.NotContains(t, query, "\n")
}

func TestCompose_CustomHost(t *testing.T) {
	handoff, err := Compose(testReten(), testAssignment(), "api.whatsapp.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(handoff.URL, "https://api.whatsapp.com/51987654321?text="))
}

func TestCompose_InvalidPhone(t *testing.T) {
	r := testReten()
	r.Phone = "123"
	_, err := Compose(r, testAssignment(), "")
	var ipe *InvalidPhoneError
	assert.ErrorAs(t, err, &ipe)
}
