package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thequad/api/internal/app/models/dto"
)

// currentUserID reads the authenticated user's ID set by the auth
// middleware. It writes the 401 response itself when missing.
func currentUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, false
	}

	userID, ok := value.(int64)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
		return 0, false
	}

	return userID, true
}

// parseIDParam parses a numeric path parameter, writing the 400 response
// itself on failure
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+label)))
		return 0, false
	}
	return id, true
}
