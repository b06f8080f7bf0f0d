package bookings

import (
	"context"
	"testing"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/activities"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Repo, *activities.Repo, activities.Activity) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory()
	acts := activities.NewRepo(st, collection.Options{})
	require.NoError(t, acts.Load(ctx))
	a, err := acts.Add(ctx, activities.Activity{
		Name:         "Töpfern",
		HalfHourRate: decimal.NewFromInt(5),
		HourRate:     decimal.NewFromInt(10),
		Active:       true,
	})
	require.NoError(t, err)

	r := NewRepo(st, collection.Options{})
	require.NoError(t, r.Load(ctx))
	return r, acts, a
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()
	r, acts, a := setup(t)

	b, err := r.Schedule(ctx, Booking{
		Customer:     "Laufkundschaft",
		Date:         "2024-05-02",
		Start:        "14:00",
		Activity:     "Töpfern",
		Duration:     120,
		Participants: 2,
	}, acts)
	require.NoError(t, err)
	require.Equal(t, a.ID, b.ActivityID)
	require.True(t, b.WalkIn())
	require.True(t, decimal.NewFromInt(40).Equal(b.Price))

	// явная цена не перезаписывается
	b2, err := r.Schedule(ctx, Booking{
		Customer: "Eva", CustomerID: "c1", Date: "2024-05-02", Start: "15:00",
		ActivityID: a.ID, Duration: 60, Participants: 1, Price: decimal.NewFromInt(7),
	}, acts)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(7).Equal(b2.Price))
	require.False(t, b2.WalkIn())

	require.Len(t, r.OnDate("2024-05-02"), 2)
	require.Len(t, r.Unpaid(), 2)

	_, err = r.Schedule(ctx, Booking{Customer: "X", Date: "2024-05-02", Start: "10:00", Activity: "Yoga"}, acts)
	require.ErrorIs(t, err, collection.ErrNotFound)
	require.Equal(t, 2, r.Len())
}

func TestSchedule_NameSnapshotSurvivesRename(t *testing.T) {
	ctx := context.Background()
	r, acts, a := setup(t)

	b, err := r.Schedule(ctx, Booking{
		Customer: "Eva", Date: "2024-05-02", Start: "10:00", ActivityID: a.ID, Duration: 30, Participants: 1,
	}, acts)
	require.NoError(t, err)

	renamed := a
	renamed.Name = "Keramik"
	_, err = acts.Update(ctx, a.ID, renamed)
	require.NoError(t, err)

	got, err := r.Get(b.ID)
	require.NoError(t, err)
	require.Equal(t, "Töpfern", got.Activity)
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	r, acts, a := setup(t)

	b, err := r.Schedule(ctx, Booking{
		Customer: "Eva", Date: "2024-05-02", Start: "10:00", ActivityID: a.ID, Duration: 30, Participants: 1,
	}, acts)
	require.NoError(t, err)

	b.Duration = 60
	b.Price = decimal.Zero
	b.Paid = true
	upd, err := r.Reschedule(ctx, b.ID, b, acts)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(10).Equal(upd.Price))
	require.True(t, upd.Paid)

	_, err = r.Reschedule(ctx, "missing", b, acts)
	require.ErrorIs(t, err, collection.ErrNotFound)
}

func TestValidate(t *testing.T) {
	base := Booking{Customer: "Eva", Date: "2024-05-02", Start: "10:00", Activity: "Töpfern", Duration: 60, Participants: 1}
	require.NoError(t, base.Validate())

	for name, mutate := range map[string]func(*Booking){
		"start":             func(b *Booking) { b.Start = "10" },
		"customer":          func(b *Booking) { b.Customer = "" },
		"zero duration":     func(b *Booking) { b.Duration = 0 },
		"negative duration": func(b *Booking) { b.Duration = -30 },
		"no participants":   func(b *Booking) { b.Participants = 0 },
		"negative price":    func(b *Booking) { b.Price = decimal.NewFromInt(-1) },
	} {
		t.Run(name, func(t *testing.T) {
			b := base
			mutate(&b)
			require.ErrorIs(t, b.Validate(), collection.ErrValidation)
		})
	}
}

func TestSchedule_RejectsEmptySession(t *testing.T) {
	ctx := context.Background()
	r, acts, a := setup(t)

	_, err := r.Schedule(ctx, Booking{
		Customer: "Eva", Date: "2024-05-02", Start: "10:00", ActivityID: a.ID, Participants: 2,
	}, acts)
	require.ErrorIs(t, err, collection.ErrValidation)

	_, err = r.Schedule(ctx, Booking{
		Customer: "Eva", Date: "2024-05-02", Start: "10:00", ActivityID: a.ID, Duration: 60,
	}, acts)
	require.ErrorIs(t, err, collection.ErrValidation)
	require.Equal(t, 0, r.Len())
}

func TestSchedule_FixedZeroPriceKept(t *testing.T) {
	ctx := context.Background()
	r, acts, a := setup(t)

	b, err := r.Schedule(ctx, Booking{
		Customer: "Eva", Date: "2024-05-02", Start: "10:00", ActivityID: a.ID,
		Duration: 60, Participants: 2, FixedPrice: true,
	}, acts)
	require.NoError(t, err)
	require.True(t, b.Price.IsZero())

	// правка без снятия флага тоже не пересчитывает
	b.Notes = "Schnupperstunde"
	upd, err := r.Reschedule(ctx, b.ID, b, acts)
	require.NoError(t, err)
	require.True(t, upd.Price.IsZero())

	// снятый флаг возвращает расчёт
	upd.FixedPrice = false
	upd, err = r.Reschedule(ctx, b.ID, upd, acts)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(20).Equal(upd.Price))
}

func TestUnpaidOn(t *testing.T) {
	ctx := context.Background()
	r, acts, a := setup(t)

	mk := func(date, start string) Booking {
		b, err := r.Schedule(ctx, Booking{
			Customer: "Eva", Date: date, Start: start, ActivityID: a.ID, Duration: 30, Participants: 1,
		}, acts)
		require.NoError(t, err)
		return b
	}
	paid := mk("2024-05-02", "10:00")
	open := mk("2024-05-02", "11:00")
	mk("2024-05-03", "10:00")

	paid.Paid = true
	_, err := r.Update(ctx, paid.ID, paid)
	require.NoError(t, err)

	got := r.UnpaidOn("2024-05-02")
	require.Len(t, got, 1)
	require.Equal(t, open.ID, got[0].ID)
	require.Len(t, r.OnDate("2024-05-02"), 2)
	require.Len(t, r.Unpaid(), 2)
}
