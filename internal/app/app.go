// Package app собирает все коллекции в одном владельце, который
// создаётся один раз и передаётся потребителям (HTTP, бот, бэкапы).
package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Spok95/shopdesk/internal/balance"
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/activities"
	"github.com/Spok95/shopdesk/internal/domain/bookings"
	"github.com/Spok95/shopdesk/internal/domain/customers"
	"github.com/Spok95/shopdesk/internal/domain/employees"
	"github.com/Spok95/shopdesk/internal/domain/items"
	"github.com/Spok95/shopdesk/internal/domain/materials"
	"github.com/Spok95/shopdesk/internal/domain/purchases"
	"github.com/Spok95/shopdesk/internal/domain/sales"
	"github.com/Spok95/shopdesk/internal/domain/theme"
	"github.com/Spok95/shopdesk/internal/domain/worksessions"
	"github.com/Spok95/shopdesk/internal/infra/metrics"
	"github.com/Spok95/shopdesk/internal/store"
)

type App struct {
	Log *slog.Logger

	Items      *items.Repo
	Materials  *materials.Repo
	Customers  *customers.Repo
	Employees  *employees.Repo
	Sessions   *worksessions.Repo
	Activities *activities.Repo
	Bookings   *bookings.Repo
	Sales      *sales.Repo
	Purchases  *purchases.Repo
	Snapshots  *balance.SnapshotRepo
	Theme      *theme.Repo

	Balance *balance.Service
}

type Options struct {
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time
}

// Open создаёт коллекции и загружает их из st.
func Open(ctx context.Context, st store.Store, o Options) (*App, error) {
	log := o.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := collection.Options{Log: log, Metrics: o.Metrics}

	a := &App{
		Log:        log,
		Items:      items.NewRepo(st, opts),
		Materials:  materials.NewRepo(st, opts),
		Customers:  customers.NewRepo(st, opts),
		Employees:  employees.NewRepo(st, opts),
		Sessions:   worksessions.NewRepo(st, opts),
		Activities: activities.NewRepo(st, opts),
		Bookings:   bookings.NewRepo(st, opts),
		Sales:      sales.NewRepo(st, opts),
		Purchases:  purchases.NewRepo(st, opts),
		Snapshots:  balance.NewSnapshotRepo(st, opts),
		Theme:      theme.NewRepo(st, log),
	}
	a.Balance = balance.NewService(balance.Sources{
		Sales:     a.Sales,
		Purchases: a.Purchases,
		Sessions:  a.Sessions,
		Employees: a.Employees,
	}, a.Snapshots, o.Now)

	if err := a.Load(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// loader: общая часть всех коллекций, нужная для загрузки и сброса.
type loader interface {
	Key() string
	Load(ctx context.Context) error
	Reset(ctx context.Context) error
	Len() int
}

func (a *App) collections() []loader {
	return []loader{
		a.Items, a.Materials, a.Customers, a.Employees, a.Sessions,
		a.Activities, a.Bookings, a.Sales, a.Purchases, a.Snapshots,
	}
}

func (a *App) Load(ctx context.Context) error {
	for _, c := range a.collections() {
		if err := c.Load(ctx); err != nil {
			return err
		}
	}
	if err := a.Theme.Load(ctx); err != nil {
		return err
	}
	a.Log.Info("collections loaded", "counts", a.Counts())
	return nil
}

// Reset стирает все ключи хранилища, включая тему.
func (a *App) Reset(ctx context.Context) error {
	for _, c := range a.collections() {
		if err := c.Reset(ctx); err != nil {
			return err
		}
	}
	if err := a.Theme.Reset(ctx); err != nil {
		return err
	}
	a.Log.Warn("all collections reset")
	return nil
}

func (a *App) Counts() map[string]int {
	out := make(map[string]int)
	for _, c := range a.collections() {
		out[c.Key()] = c.Len()
	}
	return out
}
