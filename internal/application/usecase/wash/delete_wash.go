// Package wash contains wash transaction use cases.
package wash

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/application/adapter"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// DeleteWashInput represents the input for wash deletion.
type DeleteWashInput struct {
	WashID uuid.UUID
}

// DeleteWashOutput represents the output of wash deletion.
type DeleteWashOutput struct {
	Success bool
}

// DeleteWashUseCase handles wash deletion.
type DeleteWashUseCase struct {
	washRepo adapter.WashRepository
}

// NewDeleteWashUseCase creates a new DeleteWashUseCase instance.
func NewDeleteWashUseCase(washRepo adapter.WashRepository) *DeleteWashUseCase {
	return &DeleteWashUseCase{
		washRepo: washRepo,
	}
}

// Execute performs the wash deletion. Deleting a missing id is NotFound.
func (uc *DeleteWashUseCase) Execute(ctx context.Context, input DeleteWashInput) (*DeleteWashOutput, error) {
	if _, err := uc.washRepo.FindByID(ctx, input.WashID); err != nil {
		if errors.Is(err, domainerror.ErrWashNotFound) {
			return nil, domainerror.NewWashError(
				domainerror.ErrCodeWashNotFound,
				"lavagem não encontrada",
				domainerror.ErrWashNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wash: %w", err)
	}

	if err := uc.washRepo.Delete(ctx, input.WashID); err != nil {
		return nil, fmt.Errorf("failed to delete wash: %w", err)
	}

	return &DeleteWashOutput{
		Success: true,
	}, nil
}
