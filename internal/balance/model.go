package balance

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/shopspring/decimal"
)

// SnapshotKey: коллекция сохранённых итогов. Summarize в неё не пишет,
// запись только по явному Record.
const SnapshotKey = "bilanzData"

type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Wages    decimal.Decimal `json:"wages"`
	Profit   decimal.Decimal `json:"profit"`
}

type Snapshot struct {
	ID     string      `json:"id"`
	Period period.Name `json:"period"`
	Date   string      `json:"date"`
	Summary
}

func (s Snapshot) RecordID() string { return s.ID }

func (s Snapshot) WithID(id string) Snapshot { s.ID = id; return s }

func (s Snapshot) Validate() error {
	if _, err := period.ParseDate(s.Date); err != nil {
		return collection.Invalid("date: %v", err)
	}
	return nil
}

type SnapshotRepo struct {
	*collection.Collection[Snapshot]
}

func NewSnapshotRepo(st store.Store, opts collection.Options) *SnapshotRepo {
	return &SnapshotRepo{Collection: collection.New[Snapshot](SnapshotKey, st, opts)}
}

type EntryType string

const (
	EntrySale     EntryType = "Verkauf"
	EntryPurchase EntryType = "Einkauf"
	EntryWage     EntryType = "Lohn"
)

// Entry: строка журнала, доход со знаком +, расходы и зарплаты со знаком −.
type Entry struct {
	Type    EntryType
	Date    string
	Amount  decimal.Decimal
	Details string
}
