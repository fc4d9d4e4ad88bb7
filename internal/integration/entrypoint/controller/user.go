// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raghusami/personal-finance-tracker/internal/application/usecase/user"
	domainerror "github.com/raghusami/personal-finance-tracker/internal/domain/error"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/dto"
	"github.com/raghusami/personal-finance-tracker/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	getUseCase    *user.GetUserUseCase
	updateUseCase *user.UpdateUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getUseCase *user.GetUserUseCase,
	updateUseCase *user.UpdateUserUseCase,
) *UserController {
	return &UserController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /users/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	requesterID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	input := user.GetUserInput{
		UserID:      userID,
		RequesterID: requesterID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Update handles PUT /users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	requesterID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := user.UpdateUserInput{
		UserID:              userID,
		RequesterID:         requesterID,
		Firstname:           req.Firstname,
		Lastname:            req.Lastname,
		MobileNumber:        req.MobileNumber,
		IsCoupleModeEnabled: req.IsCoupleModeEnabled,
		PreferredCurrency:   req.PreferredCurrency,
		IncomeGoal:          optionalDecimal(req.IncomeGoal),
		SavingGoal:          optionalDecimal(req.SavingGoal),
		InvestmentGoal:      optionalDecimal(req.InvestmentGoal),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
