// internal/infra/telegram/deps.go
package telegram

import (
	"context"
	"time"

	"exam_results_bot/internal/app"
	"exam_results_bot/internal/domain/result"
	"exam_results_bot/internal/domain/session"
	domainTelegram "exam_results_bot/internal/domain/telegram"
	"exam_results_bot/internal/infra/presenter"

	"github.com/sirupsen/logrus"
)

// ResultLookup is the part of app.LookupService the chat surface needs.
type ResultLookup interface {
	Lookup(ctx context.Context, rawPhone string, opts ...app.LookupOption) (*result.LookupSummary, error)
	Catalog() *result.Catalog
}

// Deps groups the collaborators shared by all chat handlers.
type Deps struct {
	Lookups       ResultLookup
	Sessions      session.Store
	Presenter     *presenter.Presenter
	Client        domainTelegram.Client
	Janitor       *MessageJanitor
	LookupTimeout time.Duration
	ProcessingTTL time.Duration
	NotFoundTTL   time.Duration
	Logger        *logrus.Entry
}
