// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/domain/period"
	"github.com/lavacar/backend/internal/integration/persistence/model"
)

// closingRepository implements the adapter.ClosingRepository interface.
//
// The unique index on the date column is the authoritative guard against two
// closings of the same day: concurrent Create calls race to the insert and
// the loser gets domainerror.ErrClosingAlreadyExists.
type closingRepository struct {
	db *gorm.DB
}

// NewClosingRepository creates a new daily closing repository instance.
func NewClosingRepository(db *gorm.DB) adapter.ClosingRepository {
	return &closingRepository{
		db: db,
	}
}

// Create persists a closing snapshot atomically.
func (r *closingRepository) Create(ctx context.Context, closing *entity.DailyClosing) error {
	closingModel := model.ClosingFromEntity(closing)
	result := r.db.WithContext(ctx).Create(closingModel)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return domainerror.ErrClosingAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByDate retrieves the closing for the calendar day containing date.
func (r *closingRepository) FindByDate(ctx context.Context, date time.Time) (*entity.DailyClosing, error) {
	var closingModel model.ClosingModel
	result := r.db.WithContext(ctx).Where("data = ?", period.DayKey(date)).First(&closingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClosingNotFound
		}
		return nil, result.Error
	}
	return closingModel.ToEntity(), nil
}

// FindMostRecent retrieves up to limit closings, most recent date first.
func (r *closingRepository) FindMostRecent(ctx context.Context, limit int) ([]*entity.DailyClosing, error) {
	query := r.db.WithContext(ctx).Order("data DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var closingModels []model.ClosingModel
	result := query.Find(&closingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	closings := make([]*entity.DailyClosing, len(closingModels))
	for i, cm := range closingModels {
		closings[i] = cm.ToEntity()
	}
	return closings, nil
}
