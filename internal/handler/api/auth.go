package api

import (
	"errors"
	"net/http"

	reqdto "lensfolio/internal/handler/dto/request"
	resdto "lensfolio/internal/handler/dto/response"
	"lensfolio/internal/handler/middleware"
	"lensfolio/internal/pkg/config"
	"lensfolio/internal/pkg/cookie"
	"lensfolio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase    usecase.AuthUseCase
	authMiddleware *middleware.AuthMiddleware
	cookieCfg      config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, authMiddleware *middleware.AuthMiddleware, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase:    authUseCase,
		authMiddleware: authMiddleware,
		cookieCfg:      cfg.Admin.Cookie,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Password is required",
		})
		return
	}

	token, expiresAt, err := h.authUseCase.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAdminTokenCookie(c, h.cookieCfg, token, h.authUseCase.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// Me reports whether the caller holds a valid admin session. It sits outside
// RequireAdmin so the admin panel can probe without triggering a 401.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.SessionResponse{
		Authenticated: h.authMiddleware.IsAdmin(c),
	})
}
