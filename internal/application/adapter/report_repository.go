// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// ReportRepository defines the read-only ledger access used by aggregations.
//
// All methods are pure reads. The store may be mutated concurrently by other
// requests; callers must not cache results across calls.
type ReportRepository interface {
	// FindWashesInWindow retrieves all washes whose timestamp falls inside the
	// window (inclusive bounds).
	FindWashesInWindow(ctx context.Context, w period.Window) ([]*entity.Wash, error)

	// FindExpensesInWindow retrieves all expenses whose timestamp falls inside
	// the window (inclusive bounds).
	FindExpensesInWindow(ctx context.Context, w period.Window) ([]*entity.Expense, error)

	// FindExpensesSince retrieves all expenses with timestamp >= start, with no
	// upper bound. Used for month-to-date summaries.
	FindExpensesSince(ctx context.Context, start time.Time) ([]*entity.Expense, error)
}
