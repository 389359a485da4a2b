// Package notify composes the assignment notification message and the
// messaging deep link it is handed off with. It performs no I/O of its own:
// the external messaging app completes the send, and delivery is assumed once
// the hand-off is opened without error.
package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// DefaultHost is the messaging deep-link host used when none is configured
const DefaultHost = "wa.me"

// minPhoneDigits is the shortest sanitized phone number accepted for a hand-off
const minPhoneDigits = 9

// constancyPlaceholder is printed when the assignment has no constancy code yet
const constancyPlaceholder = "PENDIENTE"

// InvalidPhoneError indicates a phone number too short to dispatch to
type InvalidPhoneError struct {
	Phone string
}

func (e *InvalidPhoneError) Error() string {
	return fmt.Sprintf("invalid phone number %q: need at least %d digits", e.Phone, minPhoneDigits)
}

// Handoff is a composed notification ready to be opened in the external
// messaging application
type Handoff struct {
	Phone   string
	Message string
	URL     string
}

// SanitizePhone strips every non-digit character from raw. It fails with an
// InvalidPhoneError when fewer than 9 digits remain.
func SanitizePhone(raw string) (string, error) {
	var sb strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()
	if len(digits) < minPhoneDigits {
		return "", &InvalidPhoneError{Phone: raw}
	}
	return digits, nil
}

// Compose builds the notification hand-off for an assignment: the formatted
// message block, the sanitized phone and the deep-link URL. host may be empty,
// in which case DefaultHost is used.
func Compose(reten db.Reten, assignment db.Assignment, host string) (*Handoff, error) {
	phone, err := SanitizePhone(reten.Phone)
	if err != nil {
		return nil, err
	}

	if host == "" {
		host = DefaultHost
	}

	message := composeMessage(reten, assignment)
	u := fmt.Sprintf("https://%s/%s?text=%s", host, phone, url.QueryEscape(message))

	return &Handoff{
		Phone:   phone,
		Message: message,
		URL:     u,
	}, nil
}

// composeMessage renders the fixed-order message block. The reason line is
// emitted only when a reason was supplied.
func composeMessage(reten db.Reten, a db.Assignment) string {
	constancy := a.ConstancyCode
	if constancy == "" {
		constancy = constancyPlaceholder
	}

	lines := []string{
		fmt.Sprintf("CONSTANCIA N° %s", constancy),
		fmt.Sprintf("Retén: %s", reten.Name),
		fmt.Sprintf("DNI: %s", reten.DNI),
		fmt.Sprintf("Unidad: %s", a.UnitName),
		fmt.Sprintf("Fecha: %s", localizeDate(a.Date)),
		fmt.Sprintf("Horario: %s - %s", a.StartTime, a.EndTime),
		fmt.Sprintf("Tipo: %s", typeLabel(a.Type)),
	}
	if a.Reason != "" {
		lines = append(lines, fmt.Sprintf("Motivo: %s", a.Reason))
	}

	return strings.Join(lines, "\n")
}

// localizeDate turns a "2006-01-02" date into dd/mm/yyyy for display.
// Unparseable input is passed through unchanged.
func localizeDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}

func typeLabel(assignmentType string) string {
	switch assignmentType {
	case db.TypePlanned:
		return "Programada"
	case db.TypeImmediate:
		return "Inmediata"
	default:
		return assignmentType
	}
}
