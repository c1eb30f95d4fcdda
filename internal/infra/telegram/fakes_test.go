package telegram

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"

	"exam_results_bot/internal/app"
	"exam_results_bot/internal/domain/result"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

type sentMessage struct {
	chatID  int64
	text    string
	options *telebot.SendOptions
}

type fakeClient struct {
	mu      sync.Mutex
	nextID  int
	sent    []sentMessage
	deleted []int
	sendErr error
}

func (f *fakeClient) SendMessage(chatID int64, text string, options *telebot.SendOptions) (*telebot.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.nextID++
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, options: options})
	return &telebot.Message{ID: f.nextID, Chat: &telebot.Chat{ID: chatID}}, nil
}

func (f *fakeClient) DeleteMessage(msg telebot.Editable) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, _ := msg.MessageSig()
	n, err := strconv.Atoi(id)
	if err != nil {
		return err
	}
	f.deleted = append(f.deleted, n)
	return nil
}

func (f *fakeClient) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	for i, m := range f.sent {
		out[i] = m.text
	}
	return out
}

func (f *fakeClient) deletedIDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.deleted...)
}

type fakeLookup struct {
	catalog *result.Catalog
	summary *result.LookupSummary
	err     error

	mu       sync.Mutex
	calls    int
	lastOpts int
	lastText string
}

func (f *fakeLookup) Lookup(_ context.Context, rawPhone string, opts ...app.LookupOption) (*result.LookupSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastOpts = len(opts)
	f.lastText = rawPhone
	return f.summary, f.err
}

func (f *fakeLookup) Catalog() *result.Catalog {
	return f.catalog
}

// fakeContext implements the parts of telebot.Context the handlers use.
type fakeContext struct {
	telebot.Context
	chat    *telebot.Chat
	text    string
	replies []string
}

func (c *fakeContext) Chat() *telebot.Chat { return c.chat }
func (c *fakeContext) Text() string        { return c.text }
func (c *fakeContext) Message() *telebot.Message {
	return &telebot.Message{ID: 1, Chat: c.chat, Text: c.text}
}

func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	s, ok := what.(string)
	if !ok {
		return errors.New("unexpected payload")
	}
	c.replies = append(c.replies, s)
	return nil
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
