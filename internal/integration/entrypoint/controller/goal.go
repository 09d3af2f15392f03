package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/usecase/goal"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	listUseCase     *goal.ListGoalsUseCase
	getUseCase      *goal.GetGoalUseCase
	byPeriodUseCase *goal.GetGoalByPeriodUseCase
	createUseCase   *goal.CreateGoalUseCase
	updateUseCase   *goal.UpdateGoalUseCase
	deleteUseCase   *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	byPeriodUseCase *goal.GetGoalByPeriodUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		byPeriodUseCase: byPeriodUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(ctx)
	if !ok {
		return
	}

	g, err := c.getUseCase.Execute(ctx.Request.Context(), userID, goalID)
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// GetByPeriod handles GET /goals/period/:month/:year requests.
func (c *GoalController) GetByPeriod(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	month, year, ok := pathPeriod(ctx)
	if !ok {
		respondError(ctx, http.StatusBadRequest, "month and year must be integers", string(domainerror.ErrCodeInvalidGoalMonth))
		return
	}

	g, err := c.byPeriodUseCase.Execute(ctx.Request.Context(), goal.GetGoalByPeriodInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body: target_amount is required", string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:       userID,
		TargetAmount: *req.TargetAmount,
		TargetMonth:  req.TargetMonth,
		TargetYear:   req.TargetYear,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body", string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:       goalID,
		UserID:       userID,
		TargetAmount: req.TargetAmount,
		TargetMonth:  req.TargetMonth,
		TargetYear:   req.TargetYear,
	})
	if err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID, UserID: userID}); err != nil {
		handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func goalIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondError(ctx, http.StatusNotFound, "goal not found", string(domainerror.ErrCodeGoalNotFound))
		return uuid.Nil, false
	}
	return id, true
}

func handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		respondError(ctx, goalStatus(goalErr.Code), goalErr.Message, string(goalErr.Code))
		return
	}
	respondInternal(ctx)
}

func goalStatus(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidGoalMonth,
		domainerror.ErrCodeInvalidGoalYear,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
