package purchases

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/samber/lo"
)

const Key = "materialPurchases"

type Repo struct {
	*collection.Collection[Purchase]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Purchase](Key, st, opts)}
}

func (r *Repo) Suppliers() []string {
	return lo.Uniq(lo.FilterMap(r.List(), func(p Purchase, _ int) (string, bool) {
		return p.Supplier, p.Supplier != ""
	}))
}
