package services

import (
	"time"

	"github.com/opsdesk/reten-ops/pkg/db"
)

// retenesByID builds a lookup map over a roster slice
func retenesByID(retenes []db.Reten) map[string]db.Reten {
	byID := make(map[string]db.Reten, len(retenes))
	for _, r := range retenes {
		byID[r.ID] = r
	}
	return byID
}

// displayDate turns a "2006-01-02" date into dd/mm/yyyy for human-facing
// output; unparseable input is passed through unchanged
func displayDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}
