package worksessions

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/samber/lo"
)

const Key = "workSessions"

type Repo struct {
	*collection.Collection[Session]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Session](Key, st, opts)}
}

func (r *Repo) ByEmployee(id string) []Session {
	return lo.Filter(r.List(), func(s Session, _ int) bool { return s.EmployeeID == id })
}
