// Package closing contains the daily closing (fechamento) use cases.
package closing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/application/usecase/report"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/domain/period"
)

// CloseDayInput represents the input for closing a day.
type CloseDayInput struct {
	Date  time.Time
	Notes string
}

// CloseDayUseCase produces and persists the immutable end-of-day snapshot.
//
// The day is aggregated over the calendar-day window, the snapshot is written
// atomically, and the one-closing-per-day invariant is enforced twice: an
// engine-level existence check as the fast path, and the uniqueness constraint
// on the date column as the authoritative guard against concurrent closes.
type CloseDayUseCase struct {
	closingRepo adapter.ClosingRepository
	reportRepo  adapter.ReportRepository
}

// NewCloseDayUseCase creates a new CloseDayUseCase instance.
func NewCloseDayUseCase(
	closingRepo adapter.ClosingRepository,
	reportRepo adapter.ReportRepository,
) *CloseDayUseCase {
	return &CloseDayUseCase{
		closingRepo: closingRepo,
		reportRepo:  reportRepo,
	}
}

// Execute closes the calendar day containing input.Date and returns the
// persisted snapshot. Closing an already-closed day fails with
// ErrClosingAlreadyExists and leaves the existing closing untouched.
func (uc *CloseDayUseCase) Execute(ctx context.Context, input CloseDayInput) (*entity.DailyClosing, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewClosingError(
			domainerror.ErrCodeInvalidClosingDate,
			"closing date is required",
			domainerror.ErrInvalidClosingDate,
		)
	}

	window := period.Day(input.Date)

	_, err := uc.closingRepo.FindByDate(ctx, window.Start)
	if err == nil {
		return nil, uc.duplicateError(window.Start)
	}
	if !errors.Is(err, domainerror.ErrClosingNotFound) {
		return nil, fmt.Errorf("failed to check existing closing: %w", err)
	}

	washes, err := uc.reportRepo.FindWashesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch washes for closing: %w", err)
	}
	expenses, err := uc.reportRepo.FindExpensesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for closing: %w", err)
	}

	revenue := report.SummarizeRevenue(washes)
	expenseSummary := report.SummarizeExpenses(expenses)

	snapshot := &entity.DailyClosing{
		ID:   uuid.New(),
		Date: window.Start,

		WashCount:    revenue.Count,
		RevenueTotal: revenue.Total,
		RevenueCash:  revenue.Cash,
		RevenuePix:   revenue.Pix,
		RevenueCard:  revenue.Card,

		ExpenseTotal:    expenseSummary.Total,
		ExpenseStaff:    expenseSummary.Staff,
		ExpenseSupplies: expenseSummary.Supplies,
		ExpenseMeals:    expenseSummary.Meals,
		ExpenseOther:    expenseSummary.CollapsedOther(),

		NetProfit: revenue.Total.Sub(expenseSummary.Total),

		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.closingRepo.Create(ctx, snapshot); err != nil {
		// A concurrent close may have won the race between the existence
		// check and the insert; the storage constraint reports it here.
		if errors.Is(err, domainerror.ErrClosingAlreadyExists) {
			return nil, uc.duplicateError(window.Start)
		}
		return nil, fmt.Errorf("failed to persist closing: %w", err)
	}

	return snapshot, nil
}

func (uc *CloseDayUseCase) duplicateError(date time.Time) error {
	return domainerror.NewClosingError(
		domainerror.ErrCodeClosingAlreadyExists,
		fmt.Sprintf("day %s already closed", period.DayKey(date)),
		domainerror.ErrClosingAlreadyExists,
	)
}
