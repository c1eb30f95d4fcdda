// internal/domain/session/store.go
package session

import (
	"context"
	"errors"
)

// ErrNoStream is returned when a chat has not chosen a stream, or its choice expired.
var ErrNoStream = errors.New("no stream selected")

// Store keeps each chat's selected stream between messages.
type Store interface {
	SetStream(ctx context.Context, chatID int64, streamID string) error
	// GetStream returns ErrNoStream when nothing is stored for chatID.
	GetStream(ctx context.Context, chatID int64) (string, error)
	// Sweep drops expired entries and returns how many were removed.
	Sweep(ctx context.Context) (int, error)
}
