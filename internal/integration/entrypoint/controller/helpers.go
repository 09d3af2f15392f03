// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/middleware"
)

func respondError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}

func respondInternal(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// currentUser returns the authenticated user ID, writing a 401 when absent.
func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated", string(domainerror.ErrCodeMissingToken))
		return uuid.Nil, false
	}
	return userID, true
}

// optionalInt parses an optional query parameter. ok is false when the value
// is present but not an integer.
func optionalInt(ctx *gin.Context, name string) (value *int, ok bool) {
	raw, present := ctx.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// pathPeriod parses the :month and :year path parameters.
func pathPeriod(ctx *gin.Context) (month, year int, ok bool) {
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}
