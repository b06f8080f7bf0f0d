// Package backup выгружает и загружает все коллекции одним JSON-документом.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Spok95/shopdesk/internal/app"
	"github.com/Spok95/shopdesk/internal/balance"
	"github.com/Spok95/shopdesk/internal/domain/activities"
	"github.com/Spok95/shopdesk/internal/domain/bookings"
	"github.com/Spok95/shopdesk/internal/domain/customers"
	"github.com/Spok95/shopdesk/internal/domain/employees"
	"github.com/Spok95/shopdesk/internal/domain/items"
	"github.com/Spok95/shopdesk/internal/domain/materials"
	"github.com/Spok95/shopdesk/internal/domain/purchases"
	"github.com/Spok95/shopdesk/internal/domain/sales"
	"github.com/Spok95/shopdesk/internal/domain/worksessions"
)

var ErrMalformed = errors.New("backup: malformed document")

// Bundle: формат файла резервной копии. Имена полей фиксированы.
type Bundle struct {
	Items             []items.Item           `json:"items"`
	Materials         []materials.Material   `json:"materials"`
	Customers         []customers.Customer   `json:"customers"`
	Employees         []employees.Employee   `json:"employees"`
	TimeBookings      []bookings.Booking     `json:"timeBookings"`
	Sales             []sales.Sale           `json:"sales"`
	MaterialPurchases []purchases.Purchase   `json:"materialPurchases"`
	WorkSessions      []worksessions.Session `json:"workSessions"`
	Activities        []activities.Activity  `json:"activities"`
	BilanzData        []balance.Snapshot     `json:"bilanzData"`
}

func Snapshot(a *app.App) Bundle {
	return Bundle{
		Items:             a.Items.List(),
		Materials:         a.Materials.List(),
		Customers:         a.Customers.List(),
		Employees:         a.Employees.List(),
		TimeBookings:      a.Bookings.List(),
		Sales:             a.Sales.List(),
		MaterialPurchases: a.Purchases.List(),
		WorkSessions:      a.Sessions.List(),
		Activities:        a.Activities.List(),
		BilanzData:        a.Snapshots.List(),
	}.normalized()
}

func Export(a *app.App) ([]byte, error) {
	return json.MarshalIndent(Snapshot(a), "", "  ")
}

// Decode разбирает документ целиком; отсутствующие поля становятся пустыми списками.
// Корнем документа должен быть объект, null и пустой ввод отклоняются.
func Decode(data []byte) (Bundle, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return Bundle{}, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return b.normalized(), nil
}

// Import полностью перезаписывает все коллекции. При битом документе
// ни одна коллекция не трогается.
func Import(ctx context.Context, a *app.App, data []byte) (Bundle, error) {
	b, err := Decode(data)
	if err != nil {
		return Bundle{}, err
	}
	if err := Restore(ctx, a, b); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

func Restore(ctx context.Context, a *app.App, b Bundle) error {
	steps := []func() error{
		func() error { return a.Items.Replace(ctx, b.Items) },
		func() error { return a.Materials.Replace(ctx, b.Materials) },
		func() error { return a.Customers.Replace(ctx, b.Customers) },
		func() error { return a.Employees.Replace(ctx, b.Employees) },
		func() error { return a.Bookings.Replace(ctx, b.TimeBookings) },
		func() error { return a.Sales.Replace(ctx, b.Sales) },
		func() error { return a.Purchases.Replace(ctx, b.MaterialPurchases) },
		func() error { return a.Sessions.Replace(ctx, b.WorkSessions) },
		func() error { return a.Activities.Replace(ctx, b.Activities) },
		func() error { return a.Snapshots.Replace(ctx, b.BilanzData) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
	}
	a.Log.Info("backup restored", "counts", a.Counts())
	return nil
}

func (b Bundle) normalized() Bundle {
	b.Items = nonNil(b.Items)
	b.Materials = nonNil(b.Materials)
	b.Customers = nonNil(b.Customers)
	b.Employees = nonNil(b.Employees)
	b.TimeBookings = nonNil(b.TimeBookings)
	b.Sales = nonNil(b.Sales)
	b.MaterialPurchases = nonNil(b.MaterialPurchases)
	b.WorkSessions = nonNil(b.WorkSessions)
	b.Activities = nonNil(b.Activities)
	b.BilanzData = nonNil(b.BilanzData)
	return b
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
