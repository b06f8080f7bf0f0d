// Package bot: чат в Telegram для владельца: итоги, отчёт, бэкап.
package bot

import (
	"context"
	"log/slog"

	"github.com/Spok95/shopdesk/internal/app"
	"github.com/Spok95/shopdesk/internal/infra/payments"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender: часть *tgbotapi.BotAPI, которой пользуется бот.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api       Sender
	log       *slog.Logger
	app       *app.App
	pay       *payments.Service
	adminChat int64
}

func New(api Sender, log *slog.Logger, a *app.App, pay *payments.Service, adminChatID int64) *Bot {
	return &Bot{api: api, log: log.With("component", "bot"), app: a, pay: pay, adminChat: adminChatID}
}

// Run обрабатывает апдейты, пока не отменён ctx или не закрыт канал.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			if upd.Message != nil {
				b.onMessage(ctx, upd.Message)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}
