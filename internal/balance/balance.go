package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/Spok95/shopdesk/internal/domain/employees"
	"github.com/Spok95/shopdesk/internal/domain/money"
	"github.com/Spok95/shopdesk/internal/domain/purchases"
	"github.com/Spok95/shopdesk/internal/domain/sales"
	"github.com/Spok95/shopdesk/internal/domain/worksessions"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Sources struct {
	Sales     *sales.Repo
	Purchases *purchases.Repo
	Sessions  *worksessions.Repo
	Employees *employees.Repo
}

// Service: чистое чтение поверх коллекций, своего состояния не держит.
type Service struct {
	src       Sources
	snapshots *SnapshotRepo
	now       func() time.Time
}

func NewService(src Sources, snapshots *SnapshotRepo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{src: src, snapshots: snapshots, now: now}
}

func (s *Service) Now() time.Time { return s.now() }

func (s *Service) Summarize(p period.Predicate) Summary {
	soldIn := lo.Filter(s.src.Sales.List(), func(x sales.Sale, _ int) bool { return p.Match(x.Date) })
	boughtIn := lo.Filter(s.src.Purchases.List(), func(x purchases.Purchase, _ int) bool { return p.Match(x.Date) })
	workedIn := lo.Filter(s.src.Sessions.List(), func(x worksessions.Session, _ int) bool { return p.Match(x.Date) })
	staff := s.src.Employees.List()

	income := lo.Reduce(soldIn, func(acc decimal.Decimal, x sales.Sale, _ int) decimal.Decimal {
		return acc.Add(x.Income())
	}, decimal.Zero)
	expenses := lo.Reduce(boughtIn, func(acc decimal.Decimal, x purchases.Purchase, _ int) decimal.Decimal {
		return acc.Add(x.Total)
	}, decimal.Zero)
	wages := lo.Reduce(workedIn, func(acc decimal.Decimal, x worksessions.Session, _ int) decimal.Decimal {
		return acc.Add(wage(x, staff))
	}, decimal.Zero)

	return Summary{
		Income:   income,
		Expenses: expenses,
		Wages:    wages,
		Profit:   income.Sub(expenses).Sub(wages),
	}
}

// Period: Summarize для дня/недели/месяца относительно текущей даты.
func (s *Service) Period(name period.Name) (Summary, error) {
	p, err := period.For(name, s.now())
	if err != nil {
		return Summary{}, err
	}
	return s.Summarize(p), nil
}

// Entries: строки журнала за окно (сначала продажи, потом закупки и зарплаты).
func (s *Service) Entries(p period.Predicate) []Entry {
	var out []Entry
	for _, x := range s.src.Sales.List() {
		if p.Match(x.Date) {
			out = append(out, Entry{Type: EntrySale, Date: x.Date, Amount: x.Income(), Details: money.Details(x.Items)})
		}
	}
	for _, x := range s.src.Purchases.List() {
		if p.Match(x.Date) {
			out = append(out, Entry{Type: EntryPurchase, Date: x.Date, Amount: x.Total.Neg(), Details: money.Details(x.Materials)})
		}
	}
	staff := s.src.Employees.List()
	for _, x := range s.src.Sessions.List() {
		if p.Match(x.Date) {
			details := fmt.Sprintf("%s %sh", x.Employee, x.Hours().String())
			out = append(out, Entry{Type: EntryWage, Date: x.Date, Amount: wage(x, staff).Neg(), Details: details})
		}
	}
	return out
}

// Record сохраняет итог окна в bilanzData.
func (s *Service) Record(ctx context.Context, name period.Name) (Snapshot, error) {
	sum, err := s.Period(name)
	if err != nil {
		return Snapshot{}, err
	}
	if name == "" {
		name = period.Daily
	}
	return s.snapshots.Add(ctx, Snapshot{
		Period:  name,
		Date:    s.now().Format(period.DateLayout),
		Summary: sum,
	})
}

func wage(x worksessions.Session, staff []employees.Employee) decimal.Decimal {
	return x.Hours().Mul(employees.RateFor(staff, x.EmployeeID, x.Employee))
}
