package customers

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/samber/lo"
)

const Key = "customers"

type Repo struct {
	*collection.Collection[Customer]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Customer](Key, st, opts)}
}

func (r *Repo) Active() []Customer {
	return lo.Filter(r.List(), func(c Customer, _ int) bool { return c.Active })
}

// Resolve ищет клиента по id, затем по точному имени.
func (r *Repo) Resolve(id, name string) (Customer, bool) {
	if id != "" {
		if c, err := r.Get(id); err == nil {
			return c, true
		}
	}
	if name == "" {
		return Customer{}, false
	}
	return r.Find(func(c Customer) bool { return c.Name == name })
}
