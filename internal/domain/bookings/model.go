package bookings

import (
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId,omitempty"` // пусто: клиент с улицы
	Customer     string          `json:"customer"`
	Date         string          `json:"date"`
	Start        string          `json:"start"`
	ActivityID   string          `json:"activityId,omitempty"`
	Activity     string          `json:"activity"` // имя на момент записи
	Duration     int             `json:"duration"` // минуты
	Participants int             `json:"participants"`
	Price        decimal.Decimal `json:"price"`
	FixedPrice   bool            `json:"fixedPrice,omitempty"` // цена задана вручную, в том числе 0
	Paid         bool            `json:"paid"`
	Completed    bool            `json:"completed"`
	Notes        string          `json:"notes"`
}

func (b Booking) RecordID() string { return b.ID }

func (b Booking) WithID(id string) Booking { b.ID = id; return b }

func (b Booking) WalkIn() bool { return b.CustomerID == "" }

func (b Booking) Validate() error {
	if strings.TrimSpace(b.Customer) == "" {
		return collection.Invalid("customer is required")
	}
	if _, err := period.ParseDate(b.Date); err != nil {
		return collection.Invalid("date: %v", err)
	}
	if _, err := period.ParseClock(b.Start); err != nil {
		return collection.Invalid("start: %v", err)
	}
	if strings.TrimSpace(b.Activity) == "" && b.ActivityID == "" {
		return collection.Invalid("activity is required")
	}
	if b.Duration <= 0 {
		return collection.Invalid("duration must be positive")
	}
	if b.Participants <= 0 {
		return collection.Invalid("participants must be positive")
	}
	if b.Price.IsNegative() {
		return collection.Invalid("price must not be negative")
	}
	return nil
}
