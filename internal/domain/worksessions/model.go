package worksessions

import (
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/shopspring/decimal"
)

// Session: отработанная смена. Длительность не хранится, а считается.
type Session struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId,omitempty"`
	Employee   string `json:"employee"` // имя на момент записи
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Notes      string `json:"notes"`
}

func (s Session) RecordID() string { return s.ID }

func (s Session) WithID(id string) Session { s.ID = id; return s }

func (s Session) Validate() error {
	if strings.TrimSpace(s.Employee) == "" && s.EmployeeID == "" {
		return collection.Invalid("employee is required")
	}
	if _, err := period.ParseDate(s.Date); err != nil {
		return collection.Invalid("date: %v", err)
	}
	if _, err := Hours(s.Start, s.End); err != nil {
		return err
	}
	return nil
}

// Hours: длительность смены; 0 для записей с битым временем.
func (s Session) Hours() decimal.Decimal {
	h, err := Hours(s.Start, s.End)
	if err != nil {
		return decimal.Zero
	}
	return h
}

var (
	minutesPerDay  = int64(24 * 60)
	minutesPerHour = decimal.NewFromInt(60)
)

// Hours считает end-start в часах с округлением до 2 знаков.
// Если конец раньше начала, смена переходит через полночь.
func Hours(start, end string) (decimal.Decimal, error) {
	from, err := period.ParseClock(start)
	if err != nil {
		return decimal.Zero, collection.Invalid("start: %v", err)
	}
	to, err := period.ParseClock(end)
	if err != nil {
		return decimal.Zero, collection.Invalid("end: %v", err)
	}
	minutes := int64(to - from)
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return decimal.NewFromInt(minutes).DivRound(minutesPerHour, 2), nil
}
