//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lensfolio/internal/domain/booking"
	"lensfolio/internal/domain/coupon"
	"lensfolio/internal/domain/gallery"
	"lensfolio/internal/domain/settings"
	"lensfolio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(t *testing.T, engine *gin.Engine, method, path string, body any, modify ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, m := range modify {
		m(req)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// Stub usecases with overridable function fields; a method without an
// override returns its zero values.

type stubCouponUseCase struct {
	createFn   func(ctx context.Context, input usecase.CreateCouponInput) (*coupon.Coupon, error)
	validateFn func(ctx context.Context, rawCode string) (coupon.Grant, error)
	listFn     func(ctx context.Context) ([]*coupon.Coupon, error)
	updateFn   func(ctx context.Context, id uuid.UUID, update coupon.Update) (*coupon.Coupon, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *stubCouponUseCase) CreateCoupon(ctx context.Context, input usecase.CreateCouponInput) (*coupon.Coupon, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, nil
}

func (s *stubCouponUseCase) ValidateCoupon(ctx context.Context, rawCode string) (coupon.Grant, error) {
	if s.validateFn != nil {
		return s.validateFn(ctx, rawCode)
	}
	return coupon.Grant{}, nil
}

func (s *stubCouponUseCase) ListCoupons(ctx context.Context) ([]*coupon.Coupon, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubCouponUseCase) UpdateCoupon(ctx context.Context, id uuid.UUID, update coupon.Update) (*coupon.Coupon, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, update)
	}
	return nil, nil
}

func (s *stubCouponUseCase) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubBookingUseCase struct {
	createFn       func(ctx context.Context, input usecase.CreateBookingInput) (*booking.Booking, error)
	listFn         func(ctx context.Context) ([]*booking.Booking, error)
	listPublicFn   func(ctx context.Context, userEmail string) ([]*booking.Booking, error)
	updateFn       func(ctx context.Context, id uuid.UUID, input usecase.UpdateBookingInput) (*booking.Booking, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	availabilityFn func(ctx context.Context, day time.Time, durationHours int) ([]booking.HourSlot, error)
}

func (s *stubBookingUseCase) CreateBooking(ctx context.Context, input usecase.CreateBookingInput) (*booking.Booking, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, nil
}

func (s *stubBookingUseCase) ListBookings(ctx context.Context) ([]*booking.Booking, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubBookingUseCase) ListPublicBookings(ctx context.Context, userEmail string) ([]*booking.Booking, error) {
	if s.listPublicFn != nil {
		return s.listPublicFn(ctx, userEmail)
	}
	return nil, nil
}

func (s *stubBookingUseCase) UpdateBooking(ctx context.Context, id uuid.UUID, input usecase.UpdateBookingInput) (*booking.Booking, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, input)
	}
	return nil, nil
}

func (s *stubBookingUseCase) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubBookingUseCase) DayAvailability(ctx context.Context, day time.Time, durationHours int) ([]booking.HourSlot, error) {
	if s.availabilityFn != nil {
		return s.availabilityFn(ctx, day, durationHours)
	}
	return nil, nil
}

type stubPhotoUseCase struct {
	listFn    func(ctx context.Context) ([]*gallery.Photo, error)
	uploadFn  func(ctx context.Context, input usecase.UploadPhotoInput) (*gallery.Photo, error)
	updateFn  func(ctx context.Context, id uuid.UUID, update gallery.PhotoUpdate) (*gallery.Photo, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	reorderFn func(ctx context.Context, input usecase.ReorderInput) ([]*gallery.Photo, error)
}

func (s *stubPhotoUseCase) ListPhotos(ctx context.Context) ([]*gallery.Photo, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubPhotoUseCase) UploadPhoto(ctx context.Context, input usecase.UploadPhotoInput) (*gallery.Photo, error) {
	if s.uploadFn != nil {
		return s.uploadFn(ctx, input)
	}
	return nil, nil
}

func (s *stubPhotoUseCase) UpdatePhoto(ctx context.Context, id uuid.UUID, update gallery.PhotoUpdate) (*gallery.Photo, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, update)
	}
	return nil, nil
}

func (s *stubPhotoUseCase) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubPhotoUseCase) ReorderPhotos(ctx context.Context, input usecase.ReorderInput) ([]*gallery.Photo, error) {
	if s.reorderFn != nil {
		return s.reorderFn(ctx, input)
	}
	return nil, nil
}

type stubSettingsUseCase struct {
	getFn    func(ctx context.Context) (settings.PortfolioSettings, error)
	updateFn func(ctx context.Context, update settings.Update) (settings.PortfolioSettings, error)
	cssFn    func(ctx context.Context) (string, error)
}

func (s *stubSettingsUseCase) GetSettings(ctx context.Context) (settings.PortfolioSettings, error) {
	if s.getFn != nil {
		return s.getFn(ctx)
	}
	return settings.PortfolioSettings{}, nil
}

func (s *stubSettingsUseCase) UpdateSettings(ctx context.Context, update settings.Update) (settings.PortfolioSettings, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, update)
	}
	return settings.PortfolioSettings{}, nil
}

func (s *stubSettingsUseCase) ThemeCSS(ctx context.Context) (string, error) {
	if s.cssFn != nil {
		return s.cssFn(ctx)
	}
	return "", nil
}

type stubAuthUseCase struct {
	loginFn func(plainPassword string) (string, time.Time, error)
}

func (s *stubAuthUseCase) Login(plainPassword string) (string, time.Time, error) {
	if s.loginFn != nil {
		return s.loginFn(plainPassword)
	}
	return "", time.Time{}, nil
}

func (s *stubAuthUseCase) TokenDuration() time.Duration {
	return time.Hour
}

// stubTokenValidator accepts exactly one token string.
type stubTokenValidator struct {
	accepted string
}

func (s *stubTokenValidator) ValidateAdminToken(tokenString string) error {
	if s.accepted != "" && tokenString == s.accepted {
		return nil
	}
	return usecase.ErrTokenValidation
}

func mustBooking(t *testing.T, startHour int) *booking.Booking {
	t.Helper()
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(startHour+2)*time.Hour))
	require.NoError(t, err)
	b, err := booking.NewBooking("ABCD1234", "Anna Kowalska", "anna@example.com", slot, day)
	require.NoError(t, err)
	return b
}

func mustCoupon(t *testing.T) *coupon.Coupon {
	t.Helper()
	code, err := coupon.NewCode("ABCD1234")
	require.NoError(t, err)
	c, err := coupon.NewCoupon(code, "Anna Kowalska", "anna@example.com", 2, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}
