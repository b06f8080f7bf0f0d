package items

import (
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/store"
)

const Key = "items"

type Repo struct {
	*collection.Collection[Item]
}

func NewRepo(st store.Store, opts collection.Options) *Repo {
	return &Repo{Collection: collection.New[Item](Key, st, opts)}
}
