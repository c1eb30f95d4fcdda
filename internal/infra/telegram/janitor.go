// internal/infra/telegram/janitor.go
package telegram

import (
	"sync"
	"time"

	domainTelegram "exam_results_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// MessageJanitor deletes transient bot messages after a delay.
type MessageJanitor struct {
	client  domainTelegram.Client
	logger  *logrus.Entry
	mu      sync.Mutex
	pending map[*time.Timer]struct{}
	stopped bool
}

func NewMessageJanitor(client domainTelegram.Client, logger *logrus.Entry) *MessageJanitor {
	return &MessageJanitor{
		client:  client,
		logger:  logger.WithField("component", "message_janitor"),
		pending: make(map[*time.Timer]struct{}),
	}
}

// DeleteAfter schedules msg for deletion. A delay <= 0 keeps the message.
func (j *MessageJanitor) DeleteAfter(msg telebot.Editable, delay time.Duration) {
	if msg == nil || delay <= 0 {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopped {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		j.mu.Lock()
		delete(j.pending, t)
		j.mu.Unlock()

		if err := j.client.DeleteMessage(msg); err != nil {
			messageID, chatID := msg.MessageSig()
			j.logger.WithError(err).WithFields(logrus.Fields{
				"message_id": messageID,
				"chat_id":    chatID,
			}).Warn("Could not delete message")
		}
	})
	j.pending[t] = struct{}{}
}

// Pending returns the number of scheduled deletions.
func (j *MessageJanitor) Pending() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.pending)
}

// Stop cancels every scheduled deletion and rejects new ones.
func (j *MessageJanitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopped = true
	for t := range j.pending {
		t.Stop()
	}
	j.pending = make(map[*time.Timer]struct{})
}
