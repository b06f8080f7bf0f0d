package bookings

import (
	"github.com/Spok95/shopdesk/internal/domain/activities"
	"github.com/shopspring/decimal"
)

var (
	sixty = decimal.NewFromInt(60)
	two   = decimal.NewFromInt(2)
)

// Quote считает цену по сетке: 30 мин по получасовой ставке, 60 по часовой,
// 120 по двум часовым, иначе часовая/60 * минуты. Итог умножается на участников.
func Quote(a activities.Activity, duration, participants int) decimal.Decimal {
	var base decimal.Decimal
	switch duration {
	case 30:
		base = a.HalfHourRate
	case 60:
		base = a.HourRate
	case 120:
		base = a.HourRate.Mul(two)
	default:
		base = a.HourRate.Mul(decimal.NewFromInt(int64(duration))).Div(sixty)
	}
	return base.Mul(decimal.NewFromInt(int64(participants))).Round(2)
}
