package bot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Spok95/shopdesk/internal/backup"
	"github.com/Spok95/shopdesk/internal/infra/payments"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/Spok95/shopdesk/internal/report"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var periodTitle = map[period.Name]string{
	period.Daily:   "день",
	period.Weekly:  "неделю",
	period.Monthly: "месяц",
}

const ruDate = "02.01.2006"

func (b *Bot) sendSummary(chatID int64, name period.Name) {
	sum, err := b.app.Balance.Period(name)
	if err != nil {
		b.log.Error("summary failed", "period", name, "err", err)
		b.reply(chatID, "Ошибка расчёта итогов")
		return
	}
	now := b.app.Balance.Now()
	from, to := period.Bounds(name, now)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Итоги за %s (%s", periodTitle[name], from.Format(ruDate))
	if !to.Equal(from) {
		fmt.Fprintf(&sb, " - %s", to.Format(ruDate))
	}
	sb.WriteString(")\n")
	fmt.Fprintf(&sb, "Доход: %s\n", sum.Income.StringFixed(2))
	fmt.Fprintf(&sb, "Закупки: %s\n", sum.Expenses.StringFixed(2))
	fmt.Fprintf(&sb, "Зарплаты: %s\n", sum.Wages.StringFixed(2))
	fmt.Fprintf(&sb, "Прибыль: %s", sum.Profit.StringFixed(2))

	if name == period.Daily {
		today := len(b.app.Bookings.OnDate(now.Format(period.DateLayout)))
		fmt.Fprintf(&sb, "\n\nБроней на сегодня: %d", today)
	}
	if unpaid := len(b.app.Bookings.Unpaid()); unpaid > 0 {
		fmt.Fprintf(&sb, "\nНеоплаченных броней: %d", unpaid)
	}
	b.reply(chatID, sb.String())
}

func (b *Bot) sendReport(chatID int64) {
	now := b.app.Balance.Now()
	p := period.Month(now)

	buf := &bytes.Buffer{}
	if err := report.WriteXLSX(buf, b.app.Balance.Entries(p), b.app.Balance.Summarize(p)); err != nil {
		b.log.Error("report failed", "err", err)
		b.reply(chatID, "Ошибка формирования отчёта")
		return
	}

	fileName := fmt.Sprintf("bilanz-%s.xlsx", now.Format("2006-01"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: buf.Bytes(),
	})
	doc.Caption = "Журнал доходов и расходов за " + now.Format("01.2006")
	b.send(doc)
}

func (b *Bot) sendBackup(chatID int64) {
	data, err := backup.Export(b.app)
	if err != nil {
		b.log.Error("backup failed", "err", err)
		b.reply(chatID, "Ошибка выгрузки данных")
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "shopdesk-backup-" + b.app.Balance.Now().Format(period.DateLayout) + ".json",
		Bytes: data,
	})
	doc.Caption = "Резервная копия всех данных"
	b.send(doc)
}

// sendUnpaid перечисляет неоплаченные брони со ссылками на оплату.
func (b *Bot) sendUnpaid(chatID int64) {
	unpaid := b.app.Bookings.Unpaid()
	if len(unpaid) == 0 {
		b.reply(chatID, "Неоплаченных броней нет.")
		return
	}
	var sb strings.Builder
	sb.WriteString("Неоплаченные брони:\n")
	for _, x := range unpaid {
		fmt.Fprintf(&sb, "\n%s %s, %s (%s), %s\n%s\n",
			x.Date, x.Start, x.Customer, x.Activity, x.Price.StringFixed(2),
			b.pay.PaymentURL(payments.KindBooking, x.ID))
	}
	b.reply(chatID, sb.String())
}
