package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostudiom/learn-api/internal/utils"
)

const testSecret = "test-secret"

func echoHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"user_id": CurrentUserID(c)})
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(echoHandler)(c)
	require.NoError(t, err)
	return rec
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, 5)
	require.NoError(t, err)

	rec := doRequest(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := doRequest(t, JWTAuth(testSecret), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 42, 5)
	require.NoError(t, err)

	rec := doRequest(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, 5)
	require.NoError(t, err)

	rec := doRequest(t, OptionalJWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
}

func TestOptionalJWTAuthAnonymous(t *testing.T) {
	// no token degrades to the public viewer instead of rejecting
	rec := doRequest(t, OptionalJWTAuth(testSecret), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":0`)
}

func TestOptionalJWTAuthGarbageToken(t *testing.T) {
	rec := doRequest(t, OptionalJWTAuth(testSecret), "Bearer not-a-jwt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":0`)
}
