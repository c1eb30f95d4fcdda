// internal/infra/telegram/lookup_handlers.go
package telegram

import (
	"context"
	"errors"
	"strings"

	"exam_results_bot/internal/app"
	"exam_results_bot/internal/domain/phone"
	"exam_results_bot/internal/domain/session"
	"exam_results_bot/internal/infra/presenter"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterLookupHandlers treats every plain text message as a phone lookup.
func RegisterLookupHandlers(ctx context.Context, b *telebot.Bot, deps Deps) {
	b.Handle(telebot.OnText, func(c telebot.Context) error {
		return handlePhoneMessage(ctx, c, deps)
	})
}

func handlePhoneMessage(ctx context.Context, c telebot.Context, deps Deps) error {
	msgs := deps.Presenter.Messages()
	chatID := c.Chat().ID
	logCtx := deps.Logger.WithFields(logrus.Fields{
		"handler": "phone_message",
		"chat_id": chatID,
	})

	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		return c.Send(msgs.Help)
	}

	var opts []app.LookupOption
	if len(deps.Lookups.Catalog().Streams()) > 0 {
		streamID, err := deps.Sessions.GetStream(ctx, chatID)
		if errors.Is(err, session.ErrNoStream) {
			return c.Send(msgs.NeedStream)
		}
		if err != nil {
			logCtx.WithError(err).Error("Could not read stream selection")
			return c.Send(msgs.UnexpectedError)
		}
		opts = append(opts, app.WithStream(streamID))
		logCtx = logCtx.WithField("stream", streamID)
	}

	if _, err := phone.Validate(text); err != nil {
		logCtx.Info("Rejected invalid phone")
		return c.Send(msgs.InvalidPhone)
	}

	processing, err := deps.Client.SendMessage(chatID, msgs.Processing, &telebot.SendOptions{ReplyTo: c.Message()})
	if err != nil {
		logCtx.WithError(err).Warn("Could not send processing message")
	} else {
		deps.Janitor.DeleteAfter(processing, deps.ProcessingTTL)
	}

	lookupCtx := ctx
	if deps.LookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, deps.LookupTimeout)
		defer cancel()
	}
	summary, err := deps.Lookups.Lookup(lookupCtx, text, opts...)
	if err != nil {
		if errors.Is(err, phone.ErrInvalidPhone) {
			return c.Send(msgs.InvalidPhone)
		}
		logCtx.WithError(err).Error("Lookup failed")
		return c.Send(msgs.UnexpectedError)
	}

	report := deps.Presenter.Render(summary, presenter.Options{Format: presenter.FormatHTML})
	sent, err := deps.Client.SendMessage(chatID, report, &telebot.SendOptions{ParseMode: telebot.ModeHTML})
	if err != nil {
		return err
	}
	if !summary.HasStudent() {
		deps.Janitor.DeleteAfter(sent, deps.NotFoundTTL)
	}
	return nil
}
