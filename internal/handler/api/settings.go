package api

import (
	"net/http"

	reqdto "lensfolio/internal/handler/dto/request"
	resdto "lensfolio/internal/handler/dto/response"
	"lensfolio/internal/handler/httperr"
	"lensfolio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settingsUseCase.GetSettings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read settings")
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettings(s))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	s, err := h.settingsUseCase.UpdateSettings(c.Request.Context(), req.ToUpdate())
	if err != nil {
		switch {
		case isDomainValidationError(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save settings")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettings(s))
}

// ThemeCSS serves the generated :root variable block the pages link as a
// stylesheet.
func (h *SettingsHandler) ThemeCSS(c *gin.Context) {
	css, err := h.settingsUseCase.ThemeCSS(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "")
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}
