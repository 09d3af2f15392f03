package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/reports-api/internal/application/usecase/auth"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/dto"
)

// UserController handles user endpoints.
type UserController struct {
	getProfileUseCase *auth.GetProfileUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(getProfileUseCase *auth.GetProfileUseCase) *UserController {
	return &UserController{getProfileUseCase: getProfileUseCase}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	user, err := c.getProfileUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}
