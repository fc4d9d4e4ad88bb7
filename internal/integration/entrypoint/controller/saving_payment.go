// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/savingpayment"
	"github.com/raghusami/personal-finance-tracker/internal/domain/entity"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/dto"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/middleware"
)

// SavingPaymentController handles saving payment endpoints.
type SavingPaymentController struct {
	listUseCase   *savingpayment.ListSavingPaymentsUseCase
	createUseCase *savingpayment.CreateSavingPaymentUseCase
	getUseCase    *savingpayment.GetSavingPaymentUseCase
	updateUseCase *savingpayment.UpdateSavingPaymentUseCase
	deleteUseCase *savingpayment.DeleteSavingPaymentUseCase
}

// NewSavingPaymentController creates a new saving payment controller instance.
func NewSavingPaymentController(
	listUseCase *savingpayment.ListSavingPaymentsUseCase,
	createUseCase *savingpayment.CreateSavingPaymentUseCase,
	getUseCase *savingpayment.GetSavingPaymentUseCase,
	updateUseCase *savingpayment.UpdateSavingPaymentUseCase,
	deleteUseCase *savingpayment.DeleteSavingPaymentUseCase,
) *SavingPaymentController {
	return &SavingPaymentController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /saving-payments requests.
func (c *SavingPaymentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := savingpayment.ListSavingPaymentsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve saving payments",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingPaymentListResponse(output.SavingPayments))
}

// Create handles POST /saving-payments requests.
func (c *SavingPaymentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SavingPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	savingID, err := uuid.Parse(req.SavingID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid savingId format",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		badDateResponse(ctx, "date")
		return
	}

	input := savingpayment.CreateSavingPaymentInput{
		UserID:        userID,
		SavingID:      savingID,
		Date:          date,
		Amount:        decimal.NewFromFloat(req.Amount),
		Status:        entity.PaymentStatus(req.Status),
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingPaymentResponse(output.SavingPayment))
}

// Get handles GET /saving-payments/:id requests.
func (c *SavingPaymentController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid saving payment ID format",
		})
		return
	}

	input := savingpayment.GetSavingPaymentInput{
		SavingPaymentID: paymentID,
		UserID:          userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingPaymentResponse(output.SavingPayment))
}

// Update handles PUT /saving-payments/:id requests.
func (c *SavingPaymentController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid saving payment ID format",
		})
		return
	}

	var req dto.SavingPaymentRequest
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

	input := savingpayment.UpdateSavingPaymentInput{
		SavingPaymentID: paymentID,
		UserID:          userID,
		Date:            date,
		Amount:          decimal.NewFromFloat(req.Amount),
		Status:          entity.PaymentStatus(req.Status),
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingPaymentResponse(output.SavingPayment))
}

// Delete handles DELETE /saving-payments/:id requests.
func (c *SavingPaymentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid saving payment ID format",
		})
		return
	}

	input := savingpayment.DeleteSavingPaymentInput{
		SavingPaymentID: paymentID,
		UserID:          userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
