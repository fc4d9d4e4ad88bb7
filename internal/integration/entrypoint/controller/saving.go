// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/saving"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/dto"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/middleware"
)

// SavingController handles saving endpoints.
type SavingController struct {
	listUseCase   *saving.ListSavingsUseCase
	createUseCase *saving.CreateSavingUseCase
	getUseCase    *saving.GetSavingUseCase
	updateUseCase *saving.UpdateSavingUseCase
	deleteUseCase *saving.DeleteSavingUseCase
}

// NewSavingController creates a new saving controller instance.
func NewSavingController(
	listUseCase *saving.ListSavingsUseCase,
	createUseCase *saving.CreateSavingUseCase,
	getUseCase *saving.GetSavingUseCase,
	updateUseCase *saving.UpdateSavingUseCase,
	deleteUseCase *saving.DeleteSavingUseCase,
) *SavingController {
	return &SavingController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /savings requests.
func (c *SavingController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := saving.ListSavingsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve savings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingListResponse(output.Savings))
}

// Create handles POST /savings requests.
func (c *SavingController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		badDateResponse(ctx, "date")
		return
	}

	targetDate, err := parseOptionalDate(req.TargetDate)
	if err != nil {
		badDateResponse(ctx, "targetDate")
		return
	}

	maturityDate, err := parseOptionalDate(req.MaturityDate)
	if err != nil {
		badDateResponse(ctx, "maturityDate")
		return
	}

	input := saving.CreateSavingInput{
		UserID:         userID,
		Date:           date,
		Title:          req.Title,
		Amount:         decimal.NewFromFloat(req.Amount),
		Currency:       req.Currency,
		SavingType:     entity.SavingType(req.SavingType),
		Category:       req.Category,
		Account:        req.Account,
		GoalName:       req.GoalName,
		TargetAmount:   optionalDecimal(req.TargetAmount),
		TargetDate:     targetDate,
		InterestRate:   optionalDecimal(req.InterestRate),
		InterestAmount: optionalDecimal(req.InterestAmount),
		MaturityDate:   maturityDate,
		NumberOfMonths: req.NumberOfMonths,
		VendorName:     req.VendorName,
		Notes:          req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingResponse(output.Saving))
}

// Get handles GET /savings/:id requests.
func (c *SavingController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	savingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid saving ID format",
		})
		return
	}

	input := saving.GetSavingInput{
		SavingID: savingID,
		UserID:   userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingResponse(output.Saving))
}

// Update handles PUT /savings/:id requests.
func (c *SavingController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	savingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid saving ID format",
		})
		return
	}

	var req dto.SavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		badDateResponse(ctx, "date")
		return
	}

	targetDate, err := parseOptionalDate(req.TargetDate)
	if err != nil {
		badDateResponse(ctx, "targetDate")
		return
	}

	maturityDate, err := parseOptionalDate(req.MaturityDate)
	if err != nil {
		badDateResponse(ctx, "maturityDate")
		return
	}

	input := saving.UpdateSavingInput{
		SavingID:        savingID,
		UserID:          userID,
		Date:            date,
		Title:           req.Title,
		Amount:          decimal.NewFromFloat(req.Amount),
		Currency:        req.Currency,
		SavingType:      entity.SavingType(req.SavingType),
		Category:        req.Category,
		Account:         req.Account,
		GoalName:        req.GoalName,
		TargetAmount:    optionalDecimal(req.TargetAmount),
		TargetDate:      targetDate,
		IsGoalCompleted: req.IsGoalCompleted,
		InterestRate:    optionalDecimal(req.InterestRate),
		InterestAmount:  optionalDecimal(req.InterestAmount),
		MaturityDate:    maturityDate,
		NumberOfMonths:  req.NumberOfMonths,
		VendorName:      req.VendorName,
		Notes:           req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingResponse(output.Saving))
}

// Delete handles DELETE /savings/:id requests. Payments belonging to the
// saving are removed with it.
func (c *SavingController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	savingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid saving ID format",
		})
		return
	}

	input := saving.DeleteSavingInput{
		SavingID: savingID,
		UserID:   userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
