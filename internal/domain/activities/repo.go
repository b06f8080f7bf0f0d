package activities

import (
	"fmt"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/samber/lo"
)

const Key = "activities"

type Repo struct {
	*collection.Collection[Activity]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Activity](Key, st, opts)}
}

// Resolve ищет по id, затем по точному имени.
func (r *Repo) Resolve(id, name string) (Activity, error) {
	if id != "" {
		if a, err := r.Get(id); err == nil {
			return a, nil
		}
	}
	if name != "" {
		if a, ok := r.Find(func(a Activity) bool { return a.Name == name }); ok {
			return a, nil
		}
	}
	return Activity{}, fmt.Errorf("activity %q/%q: %w", id, name, collection.ErrNotFound)
}

func (r *Repo) Categories() []string {
	return lo.Uniq(lo.FilterMap(r.List(), func(a Activity, _ int) (string, bool) {
		return a.Category, a.Category != ""
	}))
}
