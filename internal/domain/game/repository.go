package game

import (
	"context"
	"errors"
)

// ErrSlateNotFound is returned by Load when nothing has been saved yet.
var ErrSlateNotFound = errors.New("game slate not found")

// Repository persists the most recent slate of game identifiers.
type Repository interface {
	Save(ctx context.Context, slate Slate) error
	Load(ctx context.Context) (Slate, error)
}
