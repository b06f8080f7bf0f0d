package customers

import (
	"strings"

	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierStandard Tier = "standard"
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierVIP      Tier = "vip"
)

// скидка по умолчанию, %
var tierDiscount = map[Tier]int64{
	TierStandard: 0,
	TierBronze:   5,
	TierSilver:   10,
	TierGold:     15,
	TierVIP:      20,
}

func Tiers() []Tier {
	return []Tier{TierStandard, TierBronze, TierSilver, TierGold, TierVIP}
}

func (t Tier) Valid() bool {
	_, ok := tierDiscount[t]
	return ok
}

func (t Tier) DefaultDiscount() decimal.Decimal {
	return decimal.NewFromInt(tierDiscount[t])
}

type Customer struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Contact  string           `json:"contact"`
	Tier     Tier             `json:"tier"`
	Discount *decimal.Decimal `json:"discount,omitempty"` // переопределение скидки тарифа
	Active   bool             `json:"active"`
}

func (c Customer) RecordID() string { return c.ID }

func (c Customer) WithID(id string) Customer { c.ID = id; return c }

func (c Customer) Prepare() Customer {
	if c.Tier == "" {
		c.Tier = TierStandard
	}
	return c
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return collection.Invalid("name is required")
	}
	if !c.Tier.Valid() {
		return collection.Invalid("unknown tier %q", c.Tier)
	}
	return nil
}

// EffectiveDiscount: скидка в процентах.
func (c Customer) EffectiveDiscount() decimal.Decimal {
	if c.Discount != nil {
		return *c.Discount
	}
	return c.Tier.DefaultDiscount()
}
