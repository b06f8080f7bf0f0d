package money

import (
	"fmt"
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func init() {
	// В хранилище и бэкапах суммы пишутся числами, а не строками.
	decimal.MarshalJSONWithoutQuotes = true
}

// Line: позиция продажи или закупки. Цена копируется на момент записи.
type Line struct {
	Name  string          `json:"name"`
	Qty   decimal.Decimal `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

func (l Line) Amount() decimal.Decimal { return l.Price.Mul(l.Qty) }

func Total(lines []Line) decimal.Decimal {
	return lo.Reduce(lines, func(acc decimal.Decimal, l Line, _ int) decimal.Decimal {
		return acc.Add(l.Amount())
	}, decimal.Zero)
}

// Details: "Name xQty, ..." для отчётов.
func Details(lines []Line) string {
	parts := lo.Map(lines, func(l Line, _ int) string {
		return fmt.Sprintf("%s x%s", l.Name, l.Qty.String())
	})
	return strings.Join(parts, ", ")
}

func ValidateLines(field string, lines []Line) error {
	if len(lines) == 0 {
		return collection.Invalid("%s: at least one line is required", field)
	}
	for i, l := range lines {
		if strings.TrimSpace(l.Name) == "" {
			return collection.Invalid("%s[%d]: name is required", field, i)
		}
	}
	return nil
}
