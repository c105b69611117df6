// Package report contains the period aggregation and reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// weekDays is the fixed length of the weekly report window. Daily averages
// always divide by this, not by the number of days with activity.
const weekDays = 7

// WeeklyDayRow is one day of the weekly report.
type WeeklyDayRow struct {
	Date      time.Time
	Weekday   string
	WashCount int
	Revenue   decimal.Decimal
	Expense   decimal.Decimal
	Profit    decimal.Decimal
}

// WeeklyAverages holds per-day averages over the full seven-day window,
// formatted the way the client renders them.
type WeeklyAverages struct {
	Washes  string
	Revenue string
	Expense string
	Profit  string
}

// GetWeeklyReportOutput represents the trailing-seven-day report.
type GetWeeklyReportOutput struct {
	Window period.Window
	Days   []WeeklyDayRow

	WashCount    int
	RevenueTotal decimal.Decimal
	ExpenseTotal decimal.Decimal
	ProfitTotal  decimal.Decimal

	DailyAverages WeeklyAverages
}

// GetWeeklyReportUseCase assembles the trailing-seven-day report.
type GetWeeklyReportUseCase struct {
	reportRepo adapter.ReportRepository
	now        func() time.Time
}

// NewGetWeeklyReportUseCase creates a new GetWeeklyReportUseCase instance.
func NewGetWeeklyReportUseCase(reportRepo adapter.ReportRepository) *GetWeeklyReportUseCase {
	return &GetWeeklyReportUseCase{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// Execute builds the report for the seven calendar days ending today.
func (uc *GetWeeklyReportUseCase) Execute(ctx context.Context) (*GetWeeklyReportOutput, error) {
	window := period.LastSevenDays(uc.now())

	washes, err := uc.reportRepo.FindWashesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch washes for weekly report: %w", err)
	}
	expenses, err := uc.reportRepo.FindExpensesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for weekly report: %w", err)
	}

	days := make([]WeeklyDayRow, 0, weekDays)
	for _, day := range window.Days() {
		dayWindow := period.Day(day)

		var dayWashes []*entity.Wash
		for _, w := range washes {
			if dayWindow.Contains(w.Date) {
				dayWashes = append(dayWashes, w)
			}
		}
		var dayExpenses []*entity.Expense
		for _, e := range expenses {
			if dayWindow.Contains(e.Date) {
				dayExpenses = append(dayExpenses, e)
			}
		}

		revenue := SummarizeRevenue(dayWashes)
		expense := SummarizeExpenses(dayExpenses)

		days = append(days, WeeklyDayRow{
			Date:      day,
			Weekday:   weekdayShortPT[day.Weekday()],
			WashCount: revenue.Count,
			Revenue:   revenue.Total,
			Expense:   expense.Total,
			Profit:    revenue.Total.Sub(expense.Total),
		})
	}

	revenue := SummarizeRevenue(washes)
	expense := SummarizeExpenses(expenses)
	profit := revenue.Total.Sub(expense.Total)

	divisor := decimal.NewFromInt(weekDays)

	return &GetWeeklyReportOutput{
		Window:       window,
		Days:         days,
		WashCount:    revenue.Count,
		RevenueTotal: revenue.Total,
		ExpenseTotal: expense.Total,
		ProfitTotal:  profit,
		DailyAverages: WeeklyAverages{
			Washes:  decimal.NewFromInt(int64(revenue.Count)).Div(divisor).StringFixed(1),
			Revenue: revenue.Total.Div(divisor).StringFixed(2),
			Expense: expense.Total.Div(divisor).StringFixed(2),
			Profit:  profit.Div(divisor).StringFixed(2),
		},
	}, nil
}

// weekdayShortPT maps weekdays to the pt-BR short names the client shows.
var weekdayShortPT = map[time.Weekday]string{
	time.Sunday:    "dom.",
	time.Monday:    "seg.",
	time.Tuesday:   "ter.",
	time.Wednesday: "qua.",
	time.Thursday:  "qui.",
	time.Friday:    "sex.",
	time.Saturday:  "sáb.",
}
