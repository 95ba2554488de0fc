package response

import (
	"time"

	"lensfolio/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	CouponCode  string     `json:"couponCode"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
}

type HourSlotResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID(),
		CouponCode:  b.CouponCode(),
		Name:        b.Name(),
		Email:       b.Email(),
		StartTime:   b.Slot().Start(),
		EndTime:     b.Slot().End(),
		Status:      string(b.Status()),
		CreatedAt:   b.CreatedAt(),
		ConfirmedAt: b.ConfirmedAt(),
	}
}

func FromBookings(bookings []*booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

func FromHourSlots(slots []booking.HourSlot) []HourSlotResponse {
	out := make([]HourSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, HourSlotResponse{
			Start:     s.Start,
			End:       s.End,
			Available: s.Available,
		})
	}
	return out
}
