package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, refreshToken, err := GenerateJWT("64f1a2b3c4d5e6f7a8b9c0d1", "admin@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refreshToken)

	claims := &JwtCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.UserType)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestGenerateJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateJWT("64f1a2b3c4d5e6f7a8b9c0d1", "admin@example.com", "admin")
	require.Error(t, err)
}

func TestExtractUserIDFromContextValue(t *testing.T) {
	c := newTestContext(t)
	c.Set("userId", "64f1a2b3c4d5e6f7a8b9c0d1")

	userID, err := ExtractUserID(c)
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", userID)
}

func TestExtractUserIDFallsBackToToken(t *testing.T) {
	c := newTestContext(t)
	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, &JwtCustomClaims{
		UserID:   "64f1a2b3c4d5e6f7a8b9c0d1",
		Email:    "seller@example.com",
		UserType: "seller",
	}))

	userID, err := ExtractUserID(c)
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", userID)
}

func TestExtractUserIDMissing(t *testing.T) {
	c := newTestContext(t)

	_, err := ExtractUserID(c)
	require.Error(t, err)
}

func TestExtractUserType(t *testing.T) {
	c := newTestContext(t)
	c.Set("userType", "seller")

	assert.Equal(t, "seller", ExtractUserType(c))
}

func TestExtractUserTypeMissing(t *testing.T) {
	c := newTestContext(t)

	assert.Equal(t, "", ExtractUserType(c))
}
