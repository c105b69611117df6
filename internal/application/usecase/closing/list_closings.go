// Package closing contains the daily closing (fechamento) use cases.
package closing

import (
	"context"
	"fmt"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
)

// defaultListLimit bounds the closings listing when no limit is configured.
const defaultListLimit = 30

// ListClosingsUseCase lists persisted closings, most recent date first.
type ListClosingsUseCase struct {
	closingRepo adapter.ClosingRepository
	limit       int
}

// NewListClosingsUseCase creates a new ListClosingsUseCase instance.
// A non-positive limit falls back to the default.
func NewListClosingsUseCase(closingRepo adapter.ClosingRepository, limit int) *ListClosingsUseCase {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return &ListClosingsUseCase{
		closingRepo: closingRepo,
		limit:       limit,
	}
}

// Execute retrieves the most recent closings.
func (uc *ListClosingsUseCase) Execute(ctx context.Context) ([]*entity.DailyClosing, error) {
	closings, err := uc.closingRepo.FindMostRecent(ctx, uc.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list closings: %w", err)
	}
	return closings, nil
}
