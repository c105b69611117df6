// Package wash contains wash transaction use cases.
package wash

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/application/usecase/report"
	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// GetDaySummaryInput represents the input for the wash day summary.
type GetDaySummaryInput struct {
	// Date selects the calendar day. Zero means today.
	Date time.Time
}

// PaymentMethodSummary is one payment method bucket with count and total.
type PaymentMethodSummary struct {
	PaymentMethod entity.PaymentMethod
	Count         int
	Total         decimal.Decimal
}

// GetDaySummaryOutput is the wash dashboard summary for a single day.
type GetDaySummaryOutput struct {
	Date            time.Time
	WashCount       int
	Revenue         decimal.Decimal
	ByPaymentMethod []PaymentMethodSummary
	ByWashType      []entity.WashTypeBreakdown
}

// GetDaySummaryUseCase aggregates the day's washes for the dashboard.
type GetDaySummaryUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetDaySummaryUseCase creates a new GetDaySummaryUseCase instance.
func NewGetDaySummaryUseCase(reportRepo adapter.ReportRepository) *GetDaySummaryUseCase {
	return &GetDaySummaryUseCase{reportRepo: reportRepo}
}

// Execute aggregates washes for the requested day.
func (uc *GetDaySummaryUseCase) Execute(
	ctx context.Context,
	input GetDaySummaryInput,
) (*GetDaySummaryOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	window := period.Day(date)

	washes, err := uc.reportRepo.FindWashesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch washes for day summary: %w", err)
	}

	revenue := report.SummarizeRevenue(washes)

	// Per-method counts are not part of RevenueSummary; tally them here.
	counts := make(map[entity.PaymentMethod]int)
	for _, w := range washes {
		counts[w.PaymentMethod]++
	}

	totals := map[entity.PaymentMethod]decimal.Decimal{
		entity.PaymentMethodCash: revenue.Cash,
		entity.PaymentMethodPix:  revenue.Pix,
		entity.PaymentMethodCard: revenue.Card,
	}

	byMethod := make([]PaymentMethodSummary, 0, len(entity.PaymentMethods))
	for _, method := range entity.PaymentMethods {
		if counts[method] == 0 {
			continue
		}
		byMethod = append(byMethod, PaymentMethodSummary{
			PaymentMethod: method,
			Count:         counts[method],
			Total:         totals[method],
		})
	}

	return &GetDaySummaryOutput{
		Date:            window.Start,
		WashCount:       revenue.Count,
		Revenue:         revenue.Total,
		ByPaymentMethod: byMethod,
		ByWashType:      revenue.ByWashType,
	}, nil
}
