package items

import (
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/materials"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Component: строка состава изделия, материал по имени и его количество.
type Component struct {
	Name string          `json:"name"`
	Qty  decimal.Decimal `json:"qty"`
}

type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Materials []Component     `json:"materials"`
	CraftTime int             `json:"craftTime"` // минуты
}

func (i Item) RecordID() string { return i.ID }

func (i Item) WithID(id string) Item { i.ID = id; return i }

func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return collection.Invalid("name is required")
	}
	for n, c := range i.Materials {
		if strings.TrimSpace(c.Name) == "" {
			return collection.Invalid("materials[%d]: name is required", n)
		}
	}
	return nil
}

// MaterialCost: себестоимость материалов по текущим ценам каталога.
// Материал ищется по точному имени, неизвестный стоит 0.
func MaterialCost(item Item, catalog []materials.Material) decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(catalog))
	for _, m := range catalog {
		if _, ok := prices[m.Name]; !ok {
			prices[m.Name] = m.Price
		}
	}
	return lo.Reduce(item.Materials, func(acc decimal.Decimal, c Component, _ int) decimal.Decimal {
		return acc.Add(prices[c.Name].Mul(c.Qty))
	}, decimal.Zero)
}

// Margin: цена продажи минус материалы.
func Margin(item Item, catalog []materials.Material) decimal.Decimal {
	return item.Price.Sub(MaterialCost(item, catalog))
}
