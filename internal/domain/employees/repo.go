package employees

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/shopspring/decimal"
)

const Key = "employees"

type Repo struct {
	*collection.Collection[Employee]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Employee](Key, st, opts)}
}

// Resolve: сначала по id, затем по точному имени (старые записи без id).
func (r *Repo) Resolve(id, name string) (Employee, bool) {
	return Resolve(r.List(), id, name)
}

func Resolve(list []Employee, id, name string) (Employee, bool) {
	if id != "" {
		for _, e := range list {
			if e.ID == id {
				return e, true
			}
		}
	}
	if name == "" {
		return Employee{}, false
	}
	for _, e := range list {
		if e.Name == name {
			return e, true
		}
	}
	return Employee{}, false
}

// RateFor: ставка в час; 0, если сотрудник не найден.
func RateFor(list []Employee, id, name string) decimal.Decimal {
	e, ok := Resolve(list, id, name)
	if !ok {
		return decimal.Zero
	}
	return e.HourlyRate
}
