// Package wash contains wash transaction use cases.
package wash

import (
	"context"
	"fmt"
	"time"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// ListWashesInput represents the input for listing washes.
//
// Date selects a single calendar day; StartDate/EndDate select a range. When
// neither is given, today is used.
type ListWashesInput struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
	Plate     string
}

// ListWashesOutput represents the output of listing washes.
type ListWashesOutput struct {
	Washes []*entity.WashWithCustomer
}

// ListWashesUseCase handles wash listing with date and plate filters.
type ListWashesUseCase struct {
	washRepo adapter.WashRepository
	now      func() time.Time
}

// NewListWashesUseCase creates a new ListWashesUseCase instance.
func NewListWashesUseCase(washRepo adapter.WashRepository) *ListWashesUseCase {
	return &ListWashesUseCase{
		washRepo: washRepo,
		now:      time.Now,
	}
}

// Execute retrieves washes matching the filters, newest first.
func (uc *ListWashesUseCase) Execute(ctx context.Context, input ListWashesInput) (*ListWashesOutput, error) {
	var window period.Window

	switch {
	case input.Date != nil:
		window = period.Day(*input.Date)
	case input.StartDate != nil && input.EndDate != nil:
		window = period.Window{
			Start: period.Day(*input.StartDate).Start,
			End:   period.Day(*input.EndDate).End,
		}
	default:
		window = period.Day(uc.now())
	}

	washes, err := uc.washRepo.FindByFilter(ctx, adapter.WashFilter{
		Window: &window,
		Plate:  input.Plate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list washes: %w", err)
	}

	return &ListWashesOutput{
		Washes: washes,
	}, nil
}
