//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"lensfolio/internal/domain/coupon"
	"lensfolio/internal/handler/api"
	"lensfolio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCouponEngine(stub *stubCouponUseCase) *gin.Engine {
	handler := api.NewCouponHandler(stub)
	engine := gin.New()
	engine.POST("/api/coupons/validate", handler.Validate)
	engine.POST("/api/coupons", handler.Create)
	engine.GET("/api/coupons", handler.List)
	engine.PUT("/api/coupons", handler.Update)
	engine.DELETE("/api/coupons", handler.Delete)
	return engine
}

func TestCouponHandler_Validate(t *testing.T) {
	t.Run("200: returns the grant from a valid code", func(t *testing.T) {
		stub := &stubCouponUseCase{
			validateFn: func(_ context.Context, rawCode string) (coupon.Grant, error) {
				assert.Equal(t, "abcd1234", rawCode)
				return coupon.Grant{SlotDurationHours: 2, Name: "Anna Kowalska", Email: "anna@example.com"}, nil
			},
		}

		rec := performJSON(t, newCouponEngine(stub), http.MethodPost, "/api/coupons/validate", gin.H{"code": "abcd1234"})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["valid"])
		assert.Equal(t, float64(2), body["slotDurationHours"])
		assert.Equal(t, "Anna Kowalska", body["name"])
	})

	t.Run("404: unknown code gets the contact-me message", func(t *testing.T) {
		stub := &stubCouponUseCase{
			validateFn: func(context.Context, string) (coupon.Grant, error) {
				return coupon.Grant{}, usecase.ErrCouponNotFound
			},
		}

		rec := performJSON(t, newCouponEngine(stub), http.MethodPost, "/api/coupons/validate", gin.H{"code": "NOPE1234"})

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid coupon code. Please contact me to receive a booking code.", decodeBody(t, rec)["error"])
	})

	t.Run("404: inactive code reads the same as unknown", func(t *testing.T) {
		stub := &stubCouponUseCase{
			validateFn: func(context.Context, string) (coupon.Grant, error) {
				return coupon.Grant{}, usecase.ErrCouponInactive
			},
		}

		rec := performJSON(t, newCouponEngine(stub), http.MethodPost, "/api/coupons/validate", gin.H{"code": "ABCD1234"})

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid coupon code. Please contact me to receive a booking code.", decodeBody(t, rec)["error"])
	})

	t.Run("400: missing code", func(t *testing.T) {
		rec := performJSON(t, newCouponEngine(&stubCouponUseCase{}), http.MethodPost, "/api/coupons/validate", gin.H{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Code is required", decodeBody(t, rec)["error"])
	})

	t.Run("500: repository failure stays generic", func(t *testing.T) {
		stub := &stubCouponUseCase{
			validateFn: func(context.Context, string) (coupon.Grant, error) {
				return coupon.Grant{}, usecase.ErrDatabaseOperationFailed
			},
		}

		rec := performJSON(t, newCouponEngine(stub), http.MethodPost, "/api/coupons/validate", gin.H{"code": "ABCD1234"})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCouponHandler_Create(t *testing.T) {
	t.Run("201: returns the new coupon", func(t *testing.T) {
		entity := mustCoupon(t)
		stub := &stubCouponUseCase{
			createFn: func(_ context.Context, input usecase.CreateCouponInput) (*coupon.Coupon, error) {
				assert.Equal(t, 2, input.SlotDurationHours)
				return entity, nil
			},
		}

		rec := performJSON(t, newCouponEngine(stub), http.MethodPost, "/api/coupons", gin.H{
			"name":              "Anna Kowalska",
			"email":             "anna@example.com",
			"slotDurationHours": 2,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "ABCD1234", body["code"])
		assert.Equal(t, true, body["isActive"])
	})

	t.Run("400: missing fields", func(t *testing.T) {
		rec := performJSON(t, newCouponEngine(&stubCouponUseCase{}), http.MethodPost, "/api/coupons", gin.H{"name": "Anna"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("400: domain validation error is echoed", func(t *testing.T) {
		stub := &stubCouponUseCase{
			createFn: func(context.Context, usecase.CreateCouponInput) (*coupon.Coupon, error) {
				return nil, coupon.ErrInvalidSlotDuration
			},
		}

		rec := performJSON(t, newCouponEngine(stub), http.MethodPost, "/api/coupons", gin.H{
			"name":              "Anna Kowalska",
			"email":             "anna@example.com",
			"slotDurationHours": 2,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, coupon.ErrInvalidSlotDuration.Error(), decodeBody(t, rec)["error"])
	})
}

func TestCouponHandler_Delete(t *testing.T) {
	t.Run("200: deletes by query id", func(t *testing.T) {
		var gotID uuid.UUID
		stub := &stubCouponUseCase{
			deleteFn: func(_ context.Context, id uuid.UUID) error {
				gotID = id
				return nil
			},
		}
		id := uuid.New()

		rec := performJSON(t, newCouponEngine(stub), http.MethodDelete, "/api/coupons?id="+id.String(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, gotID)
		assert.Equal(t, "Coupon deleted successfully", decodeBody(t, rec)["message"])
	})

	t.Run("400: missing id", func(t *testing.T) {
		rec := performJSON(t, newCouponEngine(&stubCouponUseCase{}), http.MethodDelete, "/api/coupons", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("404: unknown id", func(t *testing.T) {
		stub := &stubCouponUseCase{
			deleteFn: func(context.Context, uuid.UUID) error {
				return usecase.ErrCouponNotFound
			},
		}

		rec := performJSON(t, newCouponEngine(stub), http.MethodDelete, "/api/coupons?id="+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
