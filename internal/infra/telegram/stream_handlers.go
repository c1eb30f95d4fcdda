// internal/infra/telegram/stream_handlers.go
package telegram

import (
	"context"
	"fmt"

	"exam_results_bot/internal/domain/result"

	"gopkg.in/telebot.v3"
)

func streamKeyboard(streams []result.Stream) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(streams))
	for _, st := range streams {
		rows = append(rows, markup.Row(markup.Data(streamLabel(st), streamCallbackUnique, st.ID)))
	}
	markup.Inline(rows...)
	return markup
}

func streamLabel(st result.Stream) string {
	if st.Label != "" {
		return st.Label
	}
	return st.ID
}

// RegisterStreamHandlers handles the stream keyboard sent by /start.
func RegisterStreamHandlers(ctx context.Context, b *telebot.Bot, deps Deps) {
	msgs := deps.Presenter.Messages()

	b.Handle(&telebot.InlineButton{Unique: streamCallbackUnique}, func(c telebot.Context) error {
		streamID := c.Callback().Data
		logCtx := deps.Logger.WithField("handler", "stream_callback").
			WithField("chat_id", c.Chat().ID).
			WithField("stream", streamID)

		st, ok := deps.Lookups.Catalog().Stream(streamID)
		if !ok {
			logCtx.Warn("Unknown stream in callback")
			return c.Respond(&telebot.CallbackResponse{Text: msgs.UnexpectedError})
		}
		if err := deps.Sessions.SetStream(ctx, c.Chat().ID, st.ID); err != nil {
			c.Bot().OnError(fmt.Errorf("error storing stream %s: %w", st.ID, err), c)
			return c.Respond(&telebot.CallbackResponse{Text: msgs.UnexpectedError})
		}
		logCtx.Info("Stream selected")

		if err := c.Respond(); err != nil {
			logCtx.WithError(err).Warn("Could not answer callback")
		}
		return c.Edit(fmt.Sprintf(msgs.StreamSelected, streamLabel(st)))
	})
}
