package materials

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
)

const Key = "materials"

type Repo struct {
	*collection.Collection[Material]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Material](Key, st, opts)}
}

// ByName: точное совпадение имени; при дублях берётся первый.
func (r *Repo) ByName(name string) (Material, bool) {
	return r.Find(func(m Material) bool { return m.Name == name })
}
