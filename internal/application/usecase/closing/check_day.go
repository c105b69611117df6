// Package closing contains the daily closing (fechamento) use cases.
package closing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// CheckDayInput represents the input for checking whether a day is closed.
type CheckDayInput struct {
	Date time.Time
}

// CheckDayOutput reports whether the day is closed and carries the closing
// when one exists.
type CheckDayOutput struct {
	Closed  bool
	Closing *entity.DailyClosing
}

// CheckDayUseCase answers "has this day been closed?" for the client.
type CheckDayUseCase struct {
	closingRepo adapter.ClosingRepository
}

// NewCheckDayUseCase creates a new CheckDayUseCase instance.
func NewCheckDayUseCase(closingRepo adapter.ClosingRepository) *CheckDayUseCase {
	return &CheckDayUseCase{closingRepo: closingRepo}
}

// Execute looks up the closing for the calendar day containing input.Date.
// An open day is a normal outcome, not an error.
func (uc *CheckDayUseCase) Execute(ctx context.Context, input CheckDayInput) (*CheckDayOutput, error) {
	closing, err := uc.closingRepo.FindByDate(ctx, input.Date)
	if err != nil {
		if errors.Is(err, domainerror.ErrClosingNotFound) {
			return &CheckDayOutput{Closed: false}, nil
		}
		return nil, fmt.Errorf("failed to check closing: %w", err)
	}

	return &CheckDayOutput{Closed: true, Closing: closing}, nil
}
