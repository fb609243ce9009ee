package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/pkg/apperrors"
)

func runHandler(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(ctx, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, &body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"not a participant", apperrors.ErrNotThreadParticipant, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"team not found", apperrors.ErrTeamNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"thread not found", apperrors.ErrThreadNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusConflict, dto.ErrorCodeAlreadyApplied},
		{"already requested", apperrors.ErrAlreadyRequested, http.StatusConflict, dto.ErrorCodeAlreadyApplied},
		{"slot taken", apperrors.ErrSlotNotAvailable, http.StatusConflict, dto.ErrorCodeSlotUnavailable},
		{"domain denied", apperrors.ErrEmailDomainNotAllowed, http.StatusBadRequest, dto.ErrorCodeEmailDomainDenied},
		{"self chat", apperrors.ErrSelfConversation, http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"closed call", apperrors.ErrCrewCallClosed, http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := runHandler(t, tc.err)
			assert.Equal(t, tc.status, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorUnwrapsCustomErrors(t *testing.T) {
	status, body := runHandler(t, apperrors.NewForbiddenError("Only the owner can delete this listing"))
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Only the owner can delete this listing", body.Error.Message)
}

func TestHandleAPIErrorKeepsGenericMessageForSentinels(t *testing.T) {
	status, body := runHandler(t, apperrors.ErrPermissionDenied)
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Permission denied", body.Error.Message)
}
