package db

// Reten status values. Status is set by staff action, never derived.
const (
	StatusAvailable   = "available"
	StatusAssigned    = "assigned"
	StatusUnavailable = "unavailable"
)

// Assignment type values
const (
	TypePlanned   = "planned"
	TypeImmediate = "immediate"
)

// Reten represents an on-call roster entry
type Reten struct {
	ID       string `validate:"required"`
	Name     string `validate:"required"`
	DNI      string `validate:"required"`
	Phone    string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	PhotoURL string
	Notes    string
	Status   string `validate:"required,oneof=available assigned unavailable"`
}

// Assignment represents a placement of a reten at a unit for a time window.
// Dates are "2006-01-02" strings and times are "15:04" local wall-clock, no
// timezone modeling. UnitName is a snapshot captured at assignment time; a
// later unit rename does not rewrite historical assignments.
type Assignment struct {
	ID        string `validate:"required"`
	RetenID   string `validate:"required"`
	UnitID    string `validate:"required"`
	UnitName  string
	Date      string `validate:"required,datetime=2006-01-02"`
	StartTime string `validate:"required,datetime=15:04"`
	EndTime   string `validate:"required,datetime=15:04"`
	Type      string `validate:"required,oneof=planned immediate"`
	Reason    string
	Notes     string

	// ConstancyCode is assigned by the persistence layer on insert
	ConstancyCode string
	// Notified records that a notification hand-off was dispatched
	Notified bool
}

// AssignmentPatch carries a partial update for an assignment.
// Nil fields are left unchanged.
type AssignmentPatch struct {
	UnitID    *string
	UnitName  *string
	Date      *string
	StartTime *string
	EndTime   *string
	Type      *string
	Reason    *string
	Notes     *string
	Notified  *bool
}

// Apply overlays the patch's non-nil fields on an assignment. Stores merge the
// patch into the current record and validate the result before persisting, so
// a partial update honors the same mandatory-field rules as an insert.
func (p AssignmentPatch) Apply(a *Assignment) {
	if p.UnitID != nil {
		a.UnitID = *p.UnitID
	}
	if p.UnitName != nil {
		a.UnitName = *p.UnitName
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.StartTime != nil {
		a.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		a.EndTime = *p.EndTime
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Reason != nil {
		a.Reason = *p.Reason
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.Notified != nil {
		a.Notified = *p.Notified
	}
}
