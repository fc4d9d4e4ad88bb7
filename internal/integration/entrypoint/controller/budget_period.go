// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/budgetperiod"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/dto"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/middleware"
)

// BudgetPeriodController handles budget period endpoints.
type BudgetPeriodController struct {
	listUseCase   *budgetperiod.ListBudgetPeriodsUseCase
	createUseCase *budgetperiod.CreateBudgetPeriodUseCase
	getUseCase    *budgetperiod.GetBudgetPeriodUseCase
	updateUseCase *budgetperiod.UpdateBudgetPeriodUseCase
	deleteUseCase *budgetperiod.DeleteBudgetPeriodUseCase
}

// NewBudgetPeriodController creates a new budget period controller instance.
func NewBudgetPeriodController(
	listUseCase *budgetperiod.ListBudgetPeriodsUseCase,
	createUseCase *budgetperiod.CreateBudgetPeriodUseCase,
	getUseCase *budgetperiod.GetBudgetPeriodUseCase,
	updateUseCase *budgetperiod.UpdateBudgetPeriodUseCase,
	deleteUseCase *budgetperiod.DeleteBudgetPeriodUseCase,
) *BudgetPeriodController {
	return &BudgetPeriodController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetPeriodController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budgetperiod.ListBudgetPeriodsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budget periods",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPeriodListResponse(output.BudgetPeriods))
}

// Create handles POST /budgets requests.
func (c *BudgetPeriodController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.BudgetPeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		badDateResponse(ctx, "fromDate")
		return
	}

	toDate, err := parseDate(req.ToDate)
	if err != nil {
		badDateResponse(ctx, "toDate")
		return
	}

	input := budgetperiod.CreateBudgetPeriodInput{
		UserID:       userID,
		FromDate:     fromDate,
		ToDate:       toDate,
		Category:     req.Category,
		Amount:       decimal.NewFromFloat(req.Amount),
		Notes:        req.Notes,
		DurationType: entity.DurationType(req.DurationType),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetPeriodResponse(output.BudgetPeriod))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetPeriodController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetPeriodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget period ID format",
		})
		return
	}

	input := budgetperiod.GetBudgetPeriodInput{
		BudgetPeriodID: budgetPeriodID,
		UserID:         userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPeriodResponse(output.BudgetPeriod))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetPeriodController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetPeriodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget period ID format",
		})
		return
	}

	var req dto.BudgetPeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		badDateResponse(ctx, "fromDate")
		return
	}

	toDate, err := parseDate(req.ToDate)
	if err != nil {
		badDateResponse(ctx, "toDate")
		return
	}

	input := budgetperiod.UpdateBudgetPeriodInput{
		BudgetPeriodID: budgetPeriodID,
		UserID:         userID,
		FromDate:       fromDate,
		ToDate:         toDate,
		Category:       req.Category,
		Amount:         decimal.NewFromFloat(req.Amount),
		Notes:          req.Notes,
		DurationType:   entity.DurationType(req.DurationType),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPeriodResponse(output.BudgetPeriod))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetPeriodController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetPeriodID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget period ID format",
		})
		return
	}

	input := budgetperiod.DeleteBudgetPeriodInput{
		BudgetPeriodID: budgetPeriodID,
		UserID:         userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
