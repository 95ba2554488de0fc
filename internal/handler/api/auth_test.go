//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"lensfolio/internal/handler/api"
	"lensfolio/internal/handler/middleware"
	"lensfolio/internal/pkg/config"
	"lensfolio/internal/pkg/cookie"
	"lensfolio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEngine(stub *stubAuthUseCase) *gin.Engine {
	authMw := middleware.NewAuthMiddleware(&stubTokenValidator{accepted: adminTestToken})
	handler := api.NewAuthHandler(stub, authMw, config.NewTestConfig())

	engine := gin.New()
	engine.POST("/api/auth/login", handler.Login)
	engine.POST("/api/auth/logout", handler.Logout)
	engine.GET("/api/auth/me", handler.Me)
	return engine
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("200: sets the session cookie and returns the token", func(t *testing.T) {
		expiresAt := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)
		stub := &stubAuthUseCase{
			loginFn: func(plainPassword string) (string, time.Time, error) {
				assert.Equal(t, "hunter2", plainPassword)
				return "issued-token", expiresAt, nil
			},
		}

		rec := performJSON(t, newAuthEngine(stub), http.MethodPost, "/api/auth/login", gin.H{"password": "hunter2"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "issued-token", decodeBody(t, rec)["token"])

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookie.AdminTokenCookieName, cookies[0].Name)
		assert.Equal(t, "issued-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("401: wrong password", func(t *testing.T) {
		stub := &stubAuthUseCase{
			loginFn: func(string) (string, time.Time, error) {
				return "", time.Time{}, usecase.ErrInvalidCredentials
			},
		}

		rec := performJSON(t, newAuthEngine(stub), http.MethodPost, "/api/auth/login", gin.H{"password": "wrong"})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid password", decodeBody(t, rec)["error"])
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("400: missing password", func(t *testing.T) {
		rec := performJSON(t, newAuthEngine(&stubAuthUseCase{}), http.MethodPost, "/api/auth/login", gin.H{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Password is required", decodeBody(t, rec)["error"])
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("204: expires the session cookie", func(t *testing.T) {
		rec := performJSON(t, newAuthEngine(&stubAuthUseCase{}), http.MethodPost, "/api/auth/logout", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookie.AdminTokenCookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.True(t, cookies[0].MaxAge < 0)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("reports no session without credentials", func(t *testing.T) {
		rec := performJSON(t, newAuthEngine(&stubAuthUseCase{}), http.MethodGet, "/api/auth/me", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["authenticated"])
	})

	t.Run("reports an active session from the cookie", func(t *testing.T) {
		rec := performJSON(t, newAuthEngine(&stubAuthUseCase{}), http.MethodGet, "/api/auth/me", nil, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: cookie.AdminTokenCookieName, Value: adminTestToken})
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["authenticated"])
	})

	t.Run("rejects an invalid token without a 401", func(t *testing.T) {
		rec := performJSON(t, newAuthEngine(&stubAuthUseCase{}), http.MethodGet, "/api/auth/me", nil, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+strings.Repeat("x", 16))
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["authenticated"])
	})
}
