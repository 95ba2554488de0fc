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

type CouponHandler struct {
	couponUseCase usecase.CouponUseCase
}

func NewCouponHandler(couponUseCase usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{
		couponUseCase: couponUseCase,
	}
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Name, email and slot duration are required",
		})
		return
	}

	created, err := h.couponUseCase.CreateCoupon(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case isDomainValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to create coupon",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCoupon(created))
}

// Validate is the public entry of the booking flow: a raw code in, a booking
// grant out. Unknown and inactive codes both read as invalid to the visitor.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Code is required",
		})
		return
	}

	grant, err := h.couponUseCase.ValidateCoupon(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCouponNotFound), errors.Is(err, usecase.ErrCouponInactive):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invalid coupon code. Please contact me to receive a booking code.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to validate coupon",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGrant(grant))
}

func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.couponUseCase.ListCoupons(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list coupons",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoupons(coupons))
}

func (h *CouponHandler) Update(c *gin.Context) {
	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ID is required",
		})
		return
	}

	updated, err := h.couponUseCase.UpdateCoupon(c.Request.Context(), req.ID, req.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case isDomainValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update coupon",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoupon(updated))
}

func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ID is required",
		})
		return
	}

	if err := h.couponUseCase.DeleteCoupon(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to delete coupon",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}
