package purchases

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/money"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/shopspring/decimal"
)

// Purchase: закупка материалов у поставщика.
type Purchase struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Supplier  string          `json:"supplier"`
	Category  string          `json:"category"`
	Invoice   string          `json:"invoice"`
	Materials []money.Line    `json:"materials"`
	Total     decimal.Decimal `json:"total"`
	Notes     string          `json:"notes"`
}

func (p Purchase) RecordID() string { return p.ID }

func (p Purchase) WithID(id string) Purchase { p.ID = id; return p }

func (p Purchase) Prepare() Purchase {
	p.Total = money.Total(p.Materials)
	return p
}

func (p Purchase) Validate() error {
	if _, err := period.ParseDate(p.Date); err != nil {
		return collection.Invalid("date: %v", err)
	}
	return money.ValidateLines("materials", p.Materials)
}
