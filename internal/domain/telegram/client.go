package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending and deleting messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) (*telebot.Message, error)
	DeleteMessage(msg telebot.Editable) error
}
