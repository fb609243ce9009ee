package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case apperrors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenRevoked, apperrors.ErrInvalidFormat):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case apperrors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")

	case apperrors.Is(err, apperrors.ErrPermissionDenied, apperrors.ErrNotThreadParticipant):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, errMessage(err, "Permission denied"))

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrLostItemNotFound,
		apperrors.ErrTeamNotFound,
		apperrors.ErrCrewCallNotFound,
		apperrors.ErrSlotNotFound,
		apperrors.ErrAlertNotFound,
		apperrors.ErrThreadNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, errMessage(err, "Resource not found"))

	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrResourceAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, errMessage(err, "Resource already exists"))
	case apperrors.Is(err, apperrors.ErrAlreadyRequested, apperrors.ErrAlreadyApplied, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeAlreadyApplied, errMessage(err, "Already submitted"))
	case apperrors.Is(err, apperrors.ErrSlotNotAvailable, apperrors.ErrSlotNotBooked):
		respondError(c, http.StatusConflict, dto.ErrorCodeSlotUnavailable, errMessage(err, "Slot is not in the expected state"))

	case apperrors.Is(err, apperrors.ErrEmailDomainNotAllowed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeEmailDomainDenied, "Registration is limited to campus email addresses")
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrInvalidEmail, apperrors.ErrInvalidPassword):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, errMessage(err, "Validation failed"))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrSelfConversation, apperrors.ErrCrewCallClosed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidRequest, errMessage(err, "Bad request"))

	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// errMessage keeps a CustomError's message in the response while falling
// back to a generic one for bare sentinels
func errMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
