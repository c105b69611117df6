// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/usecase/wash"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/integration/entrypoint/dto"
)

// WashController handles wash endpoints.
type WashController struct {
	listUseCase       *wash.ListWashesUseCase
	registerUseCase   *wash.RegisterWashUseCase
	updateUseCase     *wash.UpdateWashUseCase
	deleteUseCase     *wash.DeleteWashUseCase
	daySummaryUseCase *wash.GetDaySummaryUseCase
}

// NewWashController creates a new wash controller instance.
func NewWashController(
	listUseCase *wash.ListWashesUseCase,
	registerUseCase *wash.RegisterWashUseCase,
	updateUseCase *wash.UpdateWashUseCase,
	deleteUseCase *wash.DeleteWashUseCase,
	daySummaryUseCase *wash.GetDaySummaryUseCase,
) *WashController {
	return &WashController{
		listUseCase:       listUseCase,
		registerUseCase:   registerUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		daySummaryUseCase: daySummaryUseCase,
	}
}

// List handles GET /lavagens requests.
func (c *WashController) List(ctx *gin.Context) {
	input := wash.ListWashesInput{
		Plate: ctx.Query("placa"),
	}

	if dateStr := ctx.Query("data"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}
	if startStr := ctx.Query("dataInicio"); startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format. Use YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &start
	}
	if endStr := ctx.Query("dataFim"); endStr != "" {
		end, err := parseDate(endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWashError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWashListResponse(output.Washes))
}

// DaySummary handles GET /lavagens/resumo requests.
func (c *WashController) DaySummary(ctx *gin.Context) {
	input := wash.GetDaySummaryInput{}

	if dateStr := ctx.Query("data"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = date
	}

	output, err := c.daySummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWashError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWashDaySummaryResponse(output))
}

// Register handles POST /lavagens requests.
func (c *WashController) Register(ctx *gin.Context) {
	var req dto.RegisterWashRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := wash.RegisterWashInput{
		WashType:      req.WashType,
		Plate:         req.Plate,
		WalkInName:    req.WalkInName,
		WalkInPhone:   req.WalkInPhone,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}

	if req.CustomerID != nil && *req.CustomerID != "" {
		id, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid customer ID format",
			})
			return
		}
		input.CustomerID = &id
	}

	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidWashDate),
			})
			return
		}
		input.Date = date
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWashError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWashResponse(output.Wash))
}

// Update handles PUT /lavagens/:id requests.
func (c *WashController) Update(ctx *gin.Context) {
	washID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wash ID format",
		})
		return
	}

	var req dto.UpdateWashRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := wash.UpdateWashInput{
		WashID:   washID,
		WashType: req.WashType,
		Plate:    req.Plate,
		Notes:    req.Notes,
	}

	if req.UnlinkCustomer {
		input.CustomerIDSet = true
	} else if req.CustomerID != nil && *req.CustomerID != "" {
		id, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid customer ID format",
			})
			return
		}
		input.CustomerIDSet = true
		input.CustomerID = &id
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidWashDate),
			})
			return
		}
		input.Date = &date
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWashError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWashResponse(output.Wash))
}

// Delete handles DELETE /lavagens/:id requests.
func (c *WashController) Delete(ctx *gin.Context) {
	washID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid wash ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), wash.DeleteWashInput{
		WashID: washID,
	})
	if err != nil {
		c.handleWashError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleWashError handles wash errors and returns appropriate HTTP responses.
func (c *WashController) handleWashError(ctx *gin.Context, err error) {
	var washErr *domainerror.WashError
	if errors.As(err, &washErr) {
		ctx.JSON(c.getStatusCodeForWashError(washErr.Code), dto.ErrorResponse{
			Error: washErr.Message,
			Code:  string(washErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrWashNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Lavagem não encontrada",
			Code:  string(domainerror.ErrCodeWashNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWashError maps wash error codes to HTTP status codes.
func (c *WashController) getStatusCodeForWashError(code domainerror.WashErrorCode) int {
	switch code {
	case domainerror.ErrCodeWashNotFound,
		domainerror.ErrCodeWashCustomerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeWashTypeTooShort,
		domainerror.ErrCodeInvalidWashAmount,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeWashCustomerConflict,
		domainerror.ErrCodeInvalidWashDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
