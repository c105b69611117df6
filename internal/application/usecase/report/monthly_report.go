// Package report contains the period aggregation and reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/period"
)

// GetMonthlyReportInput represents the input for the monthly report.
type GetMonthlyReportInput struct {
	// Year and Month select the month to report on. A zero Year means the
	// current month.
	Year  int
	Month time.Month
}

// MonthlyAverages holds per-worked-day averages, formatted for the client.
type MonthlyAverages struct {
	Washes  string
	Revenue string
	Expense string
	Profit  string
}

// GetMonthlyReportOutput represents the full-month report.
type GetMonthlyReportOutput struct {
	Window     period.Window
	MonthLabel string
	DaysWorked int

	Revenue       RevenueSummary
	AverageTicket string

	Expenses ExpenseSummary

	NetProfit     decimal.Decimal
	Margin        string
	DailyAverages MonthlyAverages
}

// GetMonthlyReportUseCase assembles the month report with per-worked-day averages.
type GetMonthlyReportUseCase struct {
	reportRepo adapter.ReportRepository
	now        func() time.Time
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(reportRepo adapter.ReportRepository) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// Execute builds the report for the requested month.
//
// Days worked counts the distinct calendar dates with at least one wash,
// walk-ins included; averages divide by that count, guarded against zero.
func (uc *GetMonthlyReportUseCase) Execute(
	ctx context.Context,
	input GetMonthlyReportInput,
) (*GetMonthlyReportOutput, error) {
	year, month := input.Year, input.Month
	if year == 0 {
		now := uc.now()
		year, month = now.Year(), now.Month()
	}
	window := period.Month(year, month, time.Local)

	washes, err := uc.reportRepo.FindWashesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch washes for monthly report: %w", err)
	}
	expenses, err := uc.reportRepo.FindExpensesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for monthly report: %w", err)
	}

	revenue := SummarizeRevenue(washes)
	expenseSummary := SummarizeExpenses(expenses)
	profit := revenue.Total.Sub(expenseSummary.Total)

	workedDays := make(map[string]struct{})
	for _, w := range washes {
		workedDays[period.DayKey(w.Date)] = struct{}{}
	}
	daysWorked := len(workedDays)

	averageTicket := "0"
	if revenue.Count > 0 {
		averageTicket = revenue.Total.Div(decimal.NewFromInt(int64(revenue.Count))).StringFixed(2)
	}

	averages := MonthlyAverages{Washes: "0", Revenue: "0", Expense: "0", Profit: "0"}
	if daysWorked > 0 {
		divisor := decimal.NewFromInt(int64(daysWorked))
		averages = MonthlyAverages{
			Washes:  decimal.NewFromInt(int64(revenue.Count)).Div(divisor).StringFixed(1),
			Revenue: revenue.Total.Div(divisor).StringFixed(2),
			Expense: expenseSummary.Total.Div(divisor).StringFixed(2),
			Profit:  profit.Div(divisor).StringFixed(2),
		}
	}

	return &GetMonthlyReportOutput{
		Window:        window,
		MonthLabel:    fmt.Sprintf("%s de %d", monthNamePT[month], year),
		DaysWorked:    daysWorked,
		Revenue:       revenue,
		AverageTicket: averageTicket,
		Expenses:      expenseSummary,
		NetProfit:     profit,
		Margin:        FormatMargin(profit, revenue.Total),
		DailyAverages: averages,
	}, nil
}

// monthNamePT maps months to the pt-BR names the client shows.
var monthNamePT = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}
