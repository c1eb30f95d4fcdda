// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"

	"gopkg.in/telebot.v3"
)

const streamCallbackUnique = "stream"

func RegisterBotCommands(ctx context.Context, b *telebot.Bot, deps Deps) {
	startHelpLogger := deps.Logger.WithField("handler_group", "start_help")
	msgs := deps.Presenter.Messages()

	b.Handle("/start", func(c telebot.Context) error {
		logCtx := startHelpLogger.WithField("command", "/start").WithField("chat_id", c.Chat().ID)
		logCtx.Info("Processing /start command")

		streams := deps.Lookups.Catalog().Streams()
		if len(streams) == 0 {
			// Without streams every subject is looked up; go straight to the phone prompt.
			return c.Send(msgs.EnterPhone)
		}
		return c.Send(msgs.ChooseStream, streamKeyboard(streams))
	})

	b.Handle("/help", func(c telebot.Context) error {
		startHelpLogger.WithField("command", "/help").WithField("chat_id", c.Chat().ID).Info("Processing /help command")
		return c.Send(msgs.Help)
	})
}
