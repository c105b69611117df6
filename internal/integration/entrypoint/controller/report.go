// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lavacar/backend/internal/application/usecase/report"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	dailyUseCase   *report.GetDailyReportUseCase
	weeklyUseCase  *report.GetWeeklyReportUseCase
	monthlyUseCase *report.GetMonthlyReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dailyUseCase *report.GetDailyReportUseCase,
	weeklyUseCase *report.GetWeeklyReportUseCase,
	monthlyUseCase *report.GetMonthlyReportUseCase,
) *ReportController {
	return &ReportController{
		dailyUseCase:   dailyUseCase,
		weeklyUseCase:  weeklyUseCase,
		monthlyUseCase: monthlyUseCase,
	}
}

// Daily handles GET /relatorios/diario/:data requests. An absent date reports
// on today.
func (c *ReportController) Daily(ctx *gin.Context) {
	input := report.GetDailyReportInput{}

	if dateStr := ctx.Param("data"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidReportDate),
			})
			return
		}
		input.Date = date
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyReportResponse(output))
}

// Weekly handles GET /relatorios/semanal requests, covering the trailing
// seven calendar days.
func (c *ReportController) Weekly(ctx *gin.Context) {
	output, err := c.weeklyUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyReportResponse(output))
}

// Monthly handles GET /relatorios/mensal/:mes requests. The month parameter
// uses the YYYY-MM format; an absent month reports on the current one.
func (c *ReportController) Monthly(ctx *gin.Context) {
	input := report.GetMonthlyReportInput{}

	if monthStr := ctx.Param("mes"); monthStr != "" {
		month, err := time.Parse("2006-01", monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format. Use YYYY-MM",
				Code:  string(domainerror.ErrCodeInvalidReportMonth),
			})
			return
		}
		input.Year = month.Year()
		input.Month = month.Month()
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// handleReportError reports aggregation failures. Reports have no domain
// validation beyond the parameter parsing done in the handlers, so anything
// surfacing from a use case is a server-side failure.
func (c *ReportController) handleReportError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
