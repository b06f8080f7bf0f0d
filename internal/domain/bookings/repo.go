package bookings

import (
	"context"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/activities"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/samber/lo"
)

const Key = "timeBookings"

type ActivityResolver interface {
	Resolve(id, name string) (activities.Activity, error)
}

type Repo struct {
	*collection.Collection[Booking]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Booking](Key, st, opts)}
}

// Schedule создаёт бронь: подтягивает активность, копирует её имя
// и, если цена не зафиксирована и не задана, считает её по Quote.
func (r *Repo) Schedule(ctx context.Context, b Booking, acts ActivityResolver) (Booking, error) {
	b, err := fill(b, acts)
	if err != nil {
		return Booking{}, err
	}
	return r.Add(ctx, b)
}

// Reschedule: то же для правки существующей брони.
func (r *Repo) Reschedule(ctx context.Context, id string, b Booking, acts ActivityResolver) (Booking, error) {
	if _, err := r.Get(id); err != nil {
		return Booking{}, err
	}
	b, err := fill(b, acts)
	if err != nil {
		return Booking{}, err
	}
	return r.Update(ctx, id, b)
}

func fill(b Booking, acts ActivityResolver) (Booking, error) {
	a, err := acts.Resolve(b.ActivityID, b.Activity)
	if err != nil {
		return Booking{}, err
	}
	b.ActivityID = a.ID
	b.Activity = a.Name
	if !b.FixedPrice && b.Price.IsZero() {
		b.Price = Quote(a, b.Duration, b.Participants)
	}
	return b, nil
}

func (r *Repo) OnDate(date string) []Booking {
	return lo.Filter(r.List(), func(b Booking, _ int) bool { return b.Date == date })
}

// UnpaidOn: неоплаченные брони одного дня.
func (r *Repo) UnpaidOn(date string) []Booking {
	return lo.Filter(r.List(), func(b Booking, _ int) bool { return b.Date == date && !b.Paid })
}

func (r *Repo) Unpaid() []Booking {
	return lo.Filter(r.List(), func(b Booking, _ int) bool { return !b.Paid })
}
