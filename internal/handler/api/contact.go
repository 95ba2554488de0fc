package api

import (
	"errors"
	"net/http"

	reqdto "lensfolio/internal/handler/dto/request"
	"lensfolio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
}

func NewContactHandler(contactUseCase usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email and message are required",
		})
		return
	}

	if err := h.contactUseCase.SendMessage(c.Request.Context(), req.Email, req.Message); err != nil {
		switch {
		case errors.Is(err, usecase.ErrContactFieldsRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Email and message are required",
			})
		case errors.Is(err, usecase.ErrInvalidContactEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
