package activities

import (
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/shopspring/decimal"
)

// Activity: услуга, которую можно забронировать по времени.
type Activity struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	HalfHourRate decimal.Decimal `json:"halfHourRate"`
	HourRate     decimal.Decimal `json:"hourRate"`
	Capacity     int             `json:"capacity"`
	Active       bool            `json:"active"`
}

func (a Activity) RecordID() string { return a.ID }

func (a Activity) WithID(id string) Activity { a.ID = id; return a }

func (a Activity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return collection.Invalid("name is required")
	}
	return nil
}
