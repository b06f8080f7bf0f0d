package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Подписи кнопок нижней панели.
const (
	btnDay    = "Сегодня"
	btnWeek   = "Неделя"
	btnMonth  = "Месяц"
	btnReport = "Отчёт за месяц"
	btnBackup = "Бэкап"
	btnUnpaid = "Неоплаченные"
)

// кнопка -> команда
var buttons = map[string]string{
	btnDay:    "day",
	btnWeek:   "week",
	btnMonth:  "month",
	btnReport: "report",
	btnBackup: "backup",
	btnUnpaid: "unpaid",
}

func adminReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnDay), tgbotapi.NewKeyboardButton(btnWeek), tgbotapi.NewKeyboardButton(btnMonth)},
			{tgbotapi.NewKeyboardButton(btnUnpaid)},
			{tgbotapi.NewKeyboardButton(btnReport), tgbotapi.NewKeyboardButton(btnBackup)},
		},
	}
}
