package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thequad/api/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "thequad.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{
		ID:    42,
		Email: "arjun@srmist.edu.in",
		Role:  models.RoleStudent,
	}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "arjun@srmist.edu.in", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.Role)
	assert.Equal(t, "thequad.test", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 1, Email: "a@srmist.edu.in", Role: models.RoleStudent}

	access, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "thequad.test",
	})
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 1, Email: "a@srmist.edu.in", Role: models.RoleStudent}

	access, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAndExtractClaimsRejectsEmpty(t *testing.T) {
	svc := testService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 1, Email: "a@srmist.edu.in", Role: models.RoleStudent}

	_, first, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	_, second, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("quad-demo-2024")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "quad-demo-2024"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
