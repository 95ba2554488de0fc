package api

import (
	"errors"
	"net/http"

	reqdto "lensfolio/internal/handler/dto/request"
	resdto "lensfolio/internal/handler/dto/response"
	"lensfolio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PhotoHandler struct {
	photoUseCase usecase.PhotoUseCase
}

func NewPhotoHandler(photoUseCase usecase.PhotoUseCase) *PhotoHandler {
	return &PhotoHandler{
		photoUseCase: photoUseCase,
	}
}

func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.photoUseCase.ListPhotos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch photos",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPhotos(photos))
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file provided",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file provided",
		})
		return
	}
	defer file.Close()

	photo, err := h.photoUseCase.UploadPhoto(c.Request.Context(), usecase.UploadPhotoInput{
		Filename: fileHeader.Filename,
		Album:    c.PostForm("album"),
		File:     file,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPhotoUpload), errors.Is(err, usecase.ErrDuplicatePhoto):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid photo upload",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to upload photo",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPhoto(photo))
}

func (h *PhotoHandler) Update(c *gin.Context) {
	var req reqdto.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ID is required",
		})
		return
	}

	photo, err := h.photoUseCase.UpdatePhoto(c.Request.Context(), req.ID, req.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPhotoNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Photo not found",
			})
		case isDomainValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update photo",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPhoto(photo))
}

func (h *PhotoHandler) Reorder(c *gin.Context) {
	var req reqdto.ReorderPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	photos, err := h.photoUseCase.ReorderPhotos(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPhotoNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Photo not found",
			})
		case errors.Is(err, usecase.ErrInvalidReorder):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to reorder photos",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPhotos(photos))
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Photo ID required",
		})
		return
	}

	if err := h.photoUseCase.DeletePhoto(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPhotoNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Photo not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to delete photo",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
