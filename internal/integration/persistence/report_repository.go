// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
	"github.com/lavacar/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// FindWashesInWindow retrieves all washes whose timestamp falls inside the window.
func (r *reportRepository) FindWashesInWindow(ctx context.Context, w period.Window) ([]*entity.Wash, error) {
	var washModels []model.WashModel
	result := r.db.WithContext(ctx).
		Where("data >= ? AND data <= ?", w.Start, w.End).
		Order("data ASC").
		Find(&washModels)
	if result.Error != nil {
		return nil, result.Error
	}

	washes := make([]*entity.Wash, len(washModels))
	for i, wm := range washModels {
		washes[i] = wm.ToEntity()
	}
	return washes, nil
}

// FindExpensesInWindow retrieves all expenses whose timestamp falls inside the window.
func (r *reportRepository) FindExpensesInWindow(ctx context.Context, w period.Window) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("data >= ? AND data <= ?", w.Start, w.End).
		Order("data ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// FindExpensesSince retrieves all expenses with timestamp >= start.
func (r *reportRepository) FindExpensesSince(ctx context.Context, start time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("data >= ?", start).
		Order("data ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}
