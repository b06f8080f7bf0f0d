package sales

import (
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/money"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/shopspring/decimal"
)

type Sale struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId,omitempty"`
	Customer   string          `json:"customer"`
	Date       string          `json:"date"`
	Items      []money.Line    `json:"items"`
	Total      decimal.Decimal `json:"total"` // пересчитывается при записи
	Paid       bool            `json:"paid"`
}

func (s Sale) RecordID() string { return s.ID }

func (s Sale) WithID(id string) Sale { s.ID = id; return s }

func (s Sale) Prepare() Sale {
	s.Total = money.Total(s.Items)
	return s
}

func (s Sale) Validate() error {
	if strings.TrimSpace(s.Customer) == "" {
		return collection.Invalid("customer is required")
	}
	if _, err := period.ParseDate(s.Date); err != nil {
		return collection.Invalid("date: %v", err)
	}
	return money.ValidateLines("items", s.Items)
}

// Income считается по позициям, а не по сохранённому Total.
func (s Sale) Income() decimal.Decimal { return money.Total(s.Items) }
