package sales

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/samber/lo"
)

const Key = "sales"

type Repo struct {
	*collection.Collection[Sale]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Sale](Key, st, opts)}
}

func (r *Repo) ByCustomer(id string) []Sale {
	return lo.Filter(r.List(), func(s Sale, _ int) bool { return s.CustomerID == id })
}
