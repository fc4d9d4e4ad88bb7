// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/income"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/dto"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/middleware"
)

// IncomeController handles income record endpoints. These keep the legacy
// verb-suffixed paths under /IncomeRecords and nest every response body
// under responseData.
type IncomeController struct {
	listUseCase   *income.ListIncomesUseCase
	createUseCase *income.CreateIncomeUseCase
	getUseCase    *income.GetIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	createUseCase *income.CreateIncomeUseCase,
	getUseCase *income.GetIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /IncomeRecords/IncomeGetAll requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := income.ListIncomesInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve income records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListEnvelope(output.Incomes))
}

// Create handles POST /IncomeRecords/IncomeCreate requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.IncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	incomeDate, err := parseDate(req.IncomeDate)
	if err != nil {
		badDateResponse(ctx, "incomeDate")
		return
	}

	input := income.CreateIncomeInput{
		UserID:       userID,
		IncomeDate:   incomeDate,
		IncomeSource: req.IncomeSource,
		IncomeType:   req.IncomeType,
		Amount:       decimal.NewFromFloat(req.Amount),
		Currency:     req.Currency,
		Notes:        req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.IncomeEnvelope{
		ResponseData: dto.ToIncomeResponse(output.Income),
	})
}

// Get handles GET /IncomeRecords/IncomeGetById/:id requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income record ID format",
		})
		return
	}

	input := income.GetIncomeInput{
		IncomeID: incomeID,
		UserID:   userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IncomeEnvelope{
		ResponseData: dto.ToIncomeResponse(output.Income),
	})
}

// Update handles PUT /IncomeRecords/IncomeUpdate/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income record ID format",
		})
		return
	}

	var req dto.IncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	incomeDate, err := parseDate(req.IncomeDate)
	if err != nil {
		badDateResponse(ctx, "incomeDate")
		return
	}

	input := income.UpdateIncomeInput{
		IncomeID:     incomeID,
		UserID:       userID,
		IncomeDate:   incomeDate,
		IncomeSource: req.IncomeSource,
		IncomeType:   req.IncomeType,
		Amount:       decimal.NewFromFloat(req.Amount),
		Currency:     req.Currency,
		Notes:        req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IncomeEnvelope{
		ResponseData: dto.ToIncomeResponse(output.Income),
	})
}

// Delete handles DELETE /IncomeRecords/IncomeDelete/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income record ID format",
		})
		return
	}

	input := income.DeleteIncomeInput{
		IncomeID: incomeID,
		UserID:   userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
