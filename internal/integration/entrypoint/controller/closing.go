// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lavacar/backend/internal/application/usecase/closing"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/integration/entrypoint/dto"
)

// ClosingController handles daily closing endpoints.
type ClosingController struct {
	closeDayUseCase   *closing.CloseDayUseCase
	listUseCase       *closing.ListClosingsUseCase
	checkDayUseCase   *closing.CheckDayUseCase
	daySummaryUseCase *closing.GetDaySummaryUseCase
}

// NewClosingController creates a new closing controller instance.
func NewClosingController(
	closeDayUseCase *closing.CloseDayUseCase,
	listUseCase *closing.ListClosingsUseCase,
	checkDayUseCase *closing.CheckDayUseCase,
	daySummaryUseCase *closing.GetDaySummaryUseCase,
) *ClosingController {
	return &ClosingController{
		closeDayUseCase:   closeDayUseCase,
		listUseCase:       listUseCase,
		checkDayUseCase:   checkDayUseCase,
		daySummaryUseCase: daySummaryUseCase,
	}
}

// CloseDay handles POST /fechamento requests.
func (c *ClosingController) CloseDay(ctx *gin.Context) {
	var req dto.CloseDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidClosingDate),
		})
		return
	}

	snapshot, err := c.closeDayUseCase.Execute(ctx.Request.Context(), closing.CloseDayInput{
		Date:  date,
		Notes: req.Notes,
	})
	if err != nil {
		c.handleClosingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClosingResponse(snapshot))
}

// List handles GET /fechamento requests.
func (c *ClosingController) List(ctx *gin.Context) {
	closings, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleClosingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClosingListResponse(closings))
}

// CheckDay handles GET /fechamento/verificar/:data requests.
func (c *ClosingController) CheckDay(ctx *gin.Context) {
	date, err := parseDate(ctx.Param("data"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidClosingDate),
		})
		return
	}

	output, err := c.checkDayUseCase.Execute(ctx.Request.Context(), closing.CheckDayInput{
		Date: date,
	})
	if err != nil {
		c.handleClosingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckDayResponse(output))
}

// DaySummary handles GET /fechamento/resumo requests.
func (c *ClosingController) DaySummary(ctx *gin.Context) {
	input := closing.GetDaySummaryInput{}

	if dateStr := ctx.Query("data"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidClosingDate),
			})
			return
		}
		input.Date = date
	}

	output, err := c.daySummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleClosingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClosingSummaryResponse(output))
}

// handleClosingError handles closing errors and returns appropriate HTTP responses.
func (c *ClosingController) handleClosingError(ctx *gin.Context, err error) {
	var closingErr *domainerror.ClosingError
	if errors.As(err, &closingErr) {
		ctx.JSON(c.getStatusCodeForClosingError(closingErr.Code), dto.ErrorResponse{
			Error: closingErr.Message,
			Code:  string(closingErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForClosingError maps closing error codes to HTTP status codes.
func (c *ClosingController) getStatusCodeForClosingError(code domainerror.ClosingErrorCode) int {
	switch code {
	case domainerror.ErrCodeClosingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidClosingDate,
		domainerror.ErrCodeClosingAlreadyExists:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
