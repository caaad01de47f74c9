package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/course-catalog/internal/middleware"
	"github.com/iliyamo/course-catalog/internal/utils"
)

const secret = "test-secret"

func guardedServer() *echo.Echo {
	e := echo.New()
	g := e.Group("", middleware.BearerAuth(secret))
	g.GET("/whoami", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id":  c.Get(middleware.CtxUserID),
			"username": c.Get(middleware.CtxUsername),
		})
	})
	return e
}

func TestBearerAuthMissingHeader(t *testing.T) {
	e := guardedServer()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuthNonBearerScheme(t *testing.T) {
	e := guardedServer()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuthInvalidToken(t *testing.T) {
	e := guardedServer()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBearerAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewSessionToken(secret, 7, "alice", -time.Minute)
	require.NoError(t, err)

	e := guardedServer()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBearerAuthValidTokenInjectsIdentity(t *testing.T) {
	tok, err := utils.NewSessionToken(secret, 7, "alice", time.Hour)
	require.NoError(t, err)

	e := guardedServer()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
}
