// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/application/usecase/customer"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/integration/entrypoint/dto"
)

// CustomerController handles customer endpoints.
type CustomerController struct {
	listUseCase   *customer.ListCustomersUseCase
	getUseCase    *customer.GetCustomerUseCase
	createUseCase *customer.CreateCustomerUseCase
	updateUseCase *customer.UpdateCustomerUseCase
	deleteUseCase *customer.DeleteCustomerUseCase
}

// NewCustomerController creates a new customer controller instance.
func NewCustomerController(
	listUseCase *customer.ListCustomersUseCase,
	getUseCase *customer.GetCustomerUseCase,
	createUseCase *customer.CreateCustomerUseCase,
	updateUseCase *customer.UpdateCustomerUseCase,
	deleteUseCase *customer.DeleteCustomerUseCase,
) *CustomerController {
	return &CustomerController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /clientes requests.
func (c *CustomerController) List(ctx *gin.Context) {
	input := customer.ListCustomersInput{
		Search: ctx.Query("search"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(output.Customers))
}

// Get handles GET /clientes/:id requests.
func (c *CustomerController) Get(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), customer.GetCustomerInput{
		CustomerID: customerID,
	})
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerWithWashesResponse(output.Customer))
}

// Create handles POST /clientes requests.
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := customer.CreateCustomerInput{
		Name:  req.Name,
		Plate: req.Plate,
		Phone: req.Phone,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(output.Customer))
}

// Update handles PUT /clientes/:id requests.
func (c *CustomerController) Update(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID format",
		})
		return
	}

	var req dto.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := customer.UpdateCustomerInput{
		CustomerID: customerID,
		Name:       req.Name,
		Plate:      req.Plate,
		Phone:      req.Phone,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(output.Customer))
}

// Delete handles DELETE /clientes/:id requests.
func (c *CustomerController) Delete(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), customer.DeleteCustomerInput{
		CustomerID: customerID,
	})
	if err != nil {
		c.handleCustomerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCustomerError handles customer errors and returns appropriate HTTP responses.
func (c *CustomerController) handleCustomerError(ctx *gin.Context, err error) {
	var customerErr *domainerror.CustomerError
	if errors.As(err, &customerErr) {
		ctx.JSON(c.getStatusCodeForCustomerError(customerErr.Code), dto.ErrorResponse{
			Error: customerErr.Message,
			Code:  string(customerErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrCustomerNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Cliente não encontrado",
			Code:  string(domainerror.ErrCodeCustomerNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCustomerError maps customer error codes to HTTP status codes.
func (c *CustomerController) getStatusCodeForCustomerError(code domainerror.CustomerErrorCode) int {
	switch code {
	case domainerror.ErrCodeCustomerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCustomerNameTooShort,
		domainerror.ErrCodeInvalidPlate,
		domainerror.ErrCodePlateAlreadyExists:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
