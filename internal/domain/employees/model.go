package employees

import (
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Rank       string          `json:"rank"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	Active     bool            `json:"active"`
}

func (e Employee) RecordID() string { return e.ID }

func (e Employee) WithID(id string) Employee { e.ID = id; return e }

func (e Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return collection.Invalid("name is required")
	}
	return nil
}
