package materials

import (
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/shopspring/decimal"
)

type Material struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"` // за единицу
}

func (m Material) RecordID() string { return m.ID }

func (m Material) WithID(id string) Material { m.ID = id; return m }

func (m Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return collection.Invalid("name is required")
	}
	return nil
}
