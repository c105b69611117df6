// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/lavacar/backend/internal/application/usecase/report"
	"github.com/lavacar/backend/internal/domain/period"
)

// DailyRevenueResponse represents the revenue section of the daily report.
type DailyRevenueResponse struct {
	WashCount    int            `json:"totalLavagens"`
	RevenueTotal string         `json:"receitaTotal"`
	RevenueCash  string         `json:"receitaDinheiro"`
	RevenuePix   string         `json:"receitaPix"`
	RevenueCard  string         `json:"receitaCartao"`
	Washes       []WashResponse `json:"lavagens"`
}

// DailyExpensesResponse represents the expense section of the daily report.
type DailyExpensesResponse struct {
	ExpenseTotal    string            `json:"despesaTotal"`
	ExpenseStaff    string            `json:"despesaFuncionario"`
	ExpenseSupplies string            `json:"despesaProduto"`
	ExpenseMeals    string            `json:"despesaMarmita"`
	ExpenseOther    string            `json:"despesaOutros"`
	Expenses        []ExpenseResponse `json:"despesas"`
}

// ReportSummaryResponse represents the bottom-line section of a report.
type ReportSummaryResponse struct {
	RevenueTotal string `json:"receitaTotal"`
	ExpenseTotal string `json:"despesaTotal"`
	NetProfit    string `json:"lucroLiquido"`
	Margin       string `json:"margemLucro"`
}

// DailyReportResponse represents the response for the daily report endpoint.
type DailyReportResponse struct {
	Date     string                `json:"data"`
	Revenue  DailyRevenueResponse  `json:"receitas"`
	Expenses DailyExpensesResponse `json:"despesas"`
	Summary  ReportSummaryResponse `json:"resumo"`
}

// DailyAveragesResponse represents per-day averages in period reports.
type DailyAveragesResponse struct {
	Washes  string `json:"lavagens"`
	Revenue string `json:"receita"`
	Expense string `json:"despesa"`
	Profit  string `json:"lucro"`
}

// WeeklyDayResponse represents a single day row in the weekly report.
type WeeklyDayResponse struct {
	Date      string `json:"data"`
	Weekday   string `json:"diaSemana"`
	WashCount int    `json:"totalLavagens"`
	Revenue   string `json:"receita"`
	Expense   string `json:"despesa"`
	Profit    string `json:"lucro"`
}

// PeriodResponse represents the date range covered by a report.
type PeriodResponse struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

// WeeklyTotalsResponse represents the totals section of the weekly report.
type WeeklyTotalsResponse struct {
	WashCount     int                   `json:"totalLavagens"`
	RevenueTotal  string                `json:"receitaTotal"`
	ExpenseTotal  string                `json:"despesaTotal"`
	ProfitTotal   string                `json:"lucroTotal"`
	DailyAverages DailyAveragesResponse `json:"mediaDiaria"`
}

// WeeklyReportResponse represents the response for the weekly report endpoint.
type WeeklyReportResponse struct {
	Period PeriodResponse       `json:"periodo"`
	Days   []WeeklyDayResponse  `json:"diasSemana"`
	Totals WeeklyTotalsResponse `json:"totais"`
}

// MonthPeriodResponse represents the month covered by the monthly report.
type MonthPeriodResponse struct {
	Month      string `json:"mes"`
	Start      string `json:"inicio"`
	End        string `json:"fim"`
	DaysWorked int    `json:"diasTrabalhados"`
}

// MonthlyRevenueResponse represents the revenue section of the monthly report.
type MonthlyRevenueResponse struct {
	WashCount     int    `json:"totalLavagens"`
	RevenueTotal  string `json:"receitaTotal"`
	RevenueCash   string `json:"receitaDinheiro"`
	RevenuePix    string `json:"receitaPix"`
	RevenueCard   string `json:"receitaCartao"`
	AverageTicket string `json:"ticketMedio"`
}

// MonthlyExpensesByCategoryResponse breaks monthly expenses down per category.
type MonthlyExpensesByCategoryResponse struct {
	Staff     string `json:"funcionario"`
	Supplies  string `json:"produto"`
	Meals     string `json:"marmita"`
	Rent      string `json:"aluguel"`
	Utilities string `json:"conta"`
	Other     string `json:"outro"`
}

// MonthlyExpensesResponse represents the expense section of the monthly report.
type MonthlyExpensesResponse struct {
	ExpenseTotal string                            `json:"despesaTotal"`
	ByCategory   MonthlyExpensesByCategoryResponse `json:"porTipo"`
}

// MonthlySummaryResponse represents the bottom-line section of the monthly report.
type MonthlySummaryResponse struct {
	RevenueTotal  string                `json:"receitaTotal"`
	ExpenseTotal  string                `json:"despesaTotal"`
	NetProfit     string                `json:"lucroLiquido"`
	Margin        string                `json:"margemLucro"`
	DailyAverages DailyAveragesResponse `json:"mediaDiaria"`
}

// MonthlyReportResponse represents the response for the monthly report endpoint.
type MonthlyReportResponse struct {
	Period   MonthPeriodResponse     `json:"periodo"`
	Revenue  MonthlyRevenueResponse  `json:"receitas"`
	Expenses MonthlyExpensesResponse `json:"despesas"`
	Summary  MonthlySummaryResponse  `json:"resumo"`
}

// ToDailyReportResponse converts a GetDailyReportOutput to its DTO.
func ToDailyReportResponse(output *report.GetDailyReportOutput) DailyReportResponse {
	return DailyReportResponse{
		Date: period.DayKey(output.Date),
		Revenue: DailyRevenueResponse{
			WashCount:    output.Revenue.Count,
			RevenueTotal: output.Revenue.Total.String(),
			RevenueCash:  output.Revenue.Cash.String(),
			RevenuePix:   output.Revenue.Pix.String(),
			RevenueCard:  output.Revenue.Card.String(),
			Washes:       ToWashListResponse(output.Washes),
		},
		Expenses: DailyExpensesResponse{
			ExpenseTotal:    output.Expenses.Total.String(),
			ExpenseStaff:    output.Expenses.Staff.String(),
			ExpenseSupplies: output.Expenses.Supplies.String(),
			ExpenseMeals:    output.Expenses.Meals.String(),
			ExpenseOther:    output.Expenses.CollapsedOther().String(),
			Expenses:        ToExpenseListResponse(output.ExpenseRows),
		},
		Summary: ReportSummaryResponse{
			RevenueTotal: output.Revenue.Total.String(),
			ExpenseTotal: output.Expenses.Total.String(),
			NetProfit:    output.NetProfit.String(),
			Margin:       output.Margin,
		},
	}
}

// ToWeeklyReportResponse converts a GetWeeklyReportOutput to its DTO.
func ToWeeklyReportResponse(output *report.GetWeeklyReportOutput) WeeklyReportResponse {
	days := make([]WeeklyDayResponse, len(output.Days))
	for i, d := range output.Days {
		days[i] = WeeklyDayResponse{
			Date:      period.DayKey(d.Date),
			Weekday:   d.Weekday,
			WashCount: d.WashCount,
			Revenue:   d.Revenue.String(),
			Expense:   d.Expense.String(),
			Profit:    d.Profit.String(),
		}
	}

	return WeeklyReportResponse{
		Period: PeriodResponse{
			Start: period.DayKey(output.Window.Start),
			End:   period.DayKey(output.Window.End),
		},
		Days: days,
		Totals: WeeklyTotalsResponse{
			WashCount:    output.WashCount,
			RevenueTotal: output.RevenueTotal.String(),
			ExpenseTotal: output.ExpenseTotal.String(),
			ProfitTotal:  output.ProfitTotal.String(),
			DailyAverages: DailyAveragesResponse{
				Washes:  output.DailyAverages.Washes,
				Revenue: output.DailyAverages.Revenue,
				Expense: output.DailyAverages.Expense,
				Profit:  output.DailyAverages.Profit,
			},
		},
	}
}

// ToMonthlyReportResponse converts a GetMonthlyReportOutput to its DTO.
func ToMonthlyReportResponse(output *report.GetMonthlyReportOutput) MonthlyReportResponse {
	return MonthlyReportResponse{
		Period: MonthPeriodResponse{
			Month:      output.MonthLabel,
			Start:      period.DayKey(output.Window.Start),
			End:        period.DayKey(output.Window.End),
			DaysWorked: output.DaysWorked,
		},
		Revenue: MonthlyRevenueResponse{
			WashCount:     output.Revenue.Count,
			RevenueTotal:  output.Revenue.Total.String(),
			RevenueCash:   output.Revenue.Cash.String(),
			RevenuePix:    output.Revenue.Pix.String(),
			RevenueCard:   output.Revenue.Card.String(),
			AverageTicket: output.AverageTicket,
		},
		Expenses: MonthlyExpensesResponse{
			ExpenseTotal: output.Expenses.Total.String(),
			ByCategory: MonthlyExpensesByCategoryResponse{
				Staff:     output.Expenses.Staff.String(),
				Supplies:  output.Expenses.Supplies.String(),
				Meals:     output.Expenses.Meals.String(),
				Rent:      output.Expenses.Rent.String(),
				Utilities: output.Expenses.Utilities.String(),
				Other:     output.Expenses.Other.String(),
			},
		},
		Summary: MonthlySummaryResponse{
			RevenueTotal: output.Revenue.Total.String(),
			ExpenseTotal: output.Expenses.Total.String(),
			NetProfit:    output.NetProfit.String(),
			Margin:       output.Margin,
			DailyAverages: DailyAveragesResponse{
				Washes:  output.DailyAverages.Washes,
				Revenue: output.DailyAverages.Revenue,
				Expense: output.DailyAverages.Expense,
				Profit:  output.DailyAverages.Profit,
			},
		},
	}
}
