// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/lavacar/backend/internal/domain/entity"
)

// ClosingRepository defines the interface for daily closing persistence operations.
//
// Closings are append-only: there are deliberately no update or delete methods.
type ClosingRepository interface {
	// Create persists a closing snapshot atomically. If a closing already
	// exists for the same date it returns domainerror.ErrClosingAlreadyExists;
	// the uniqueness constraint on the date column is the authoritative guard
	// against concurrent closes.
	Create(ctx context.Context, closing *entity.DailyClosing) error

	// FindByDate retrieves the closing for the calendar day containing date,
	// or domainerror.ErrClosingNotFound when the day is still open.
	FindByDate(ctx context.Context, date time.Time) (*entity.DailyClosing, error)

	// FindMostRecent retrieves up to limit closings, most recent date first.
	FindMostRecent(ctx context.Context, limit int) ([]*entity.DailyClosing, error)
}
