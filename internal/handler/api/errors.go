package api

import (
	"errors"

	"lensfolio/internal/domain/booking"
	"lensfolio/internal/domain/coupon"
	"lensfolio/internal/domain/gallery"
	"lensfolio/internal/domain/settings"
)

// isDomainValidationError matches entity validation failures whose messages
// are safe to echo back as a 400.
func isDomainValidationError(err error) bool {
	for _, target := range []error{
		coupon.ErrNameRequired,
		coupon.ErrEmailRequired,
		coupon.ErrInvalidSlotDuration,
		booking.ErrNameRequired,
		booking.ErrEmailRequired,
		booking.ErrCouponCodeRequired,
		booking.ErrInvalidTimeSlot,
		gallery.ErrInvalidGridSize,
		gallery.ErrInvalidDimensions,
		settings.ErrInvalidThemePreset,
		settings.ErrInvalidFontFamily,
		settings.ErrInvalidHexColor,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
