package bot

import (
	"context"
	"strings"

	"github.com/Spok95/shopdesk/internal/period"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) onMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if chatID != b.adminChat {
		b.log.Warn("foreign chat", "chat_id", chatID)
		b.reply(chatID, "Бот доступен только владельцу.")
		return
	}

	cmd := msg.Command()
	if cmd == "" {
		cmd = buttons[strings.TrimSpace(msg.Text)]
	}
	b.handleCommand(ctx, chatID, cmd)
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, cmd string) {
	switch cmd {
	case "start":
		m := tgbotapi.NewMessage(chatID, "Привет! Кнопки снизу: итоги, отчёт за месяц, бэкап.")
		m.ReplyMarkup = adminReplyKeyboard()
		b.send(m)
	case "day":
		b.sendSummary(chatID, period.Daily)
	case "week":
		b.sendSummary(chatID, period.Weekly)
	case "month":
		b.sendSummary(chatID, period.Monthly)
	case "report":
		b.sendReport(chatID)
	case "backup":
		b.sendBackup(chatID)
	case "unpaid":
		b.sendUnpaid(chatID)
	default:
		b.reply(chatID, "Не понял команду. Доступно: /day, /week, /month, /unpaid, /report, /backup.")
	}
}
