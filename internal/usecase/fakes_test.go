//go:build unit

package usecase_test

import (
	"context"
	"io"
	"time"

	"lensfolio/internal/domain/booking"
	"lensfolio/internal/domain/coupon"
	"lensfolio/internal/domain/gallery"
	"lensfolio/internal/domain/settings"
	"lensfolio/internal/infra"

	"github.com/google/uuid"
)

// In-memory stand-ins for the pgx repositories. The booking fake reproduces
// the exclusion constraint with the same overlap predicate the store uses.

type fakeCouponRepo struct {
	coupons      map[uuid.UUID]*coupon.Coupon
	duplicateN   int
	failWith     error
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: map[uuid.UUID]*coupon.Coupon{}}
}

func (r *fakeCouponRepo) Create(_ context.Context, c *coupon.Coupon) error {
	if r.failWith != nil {
		return r.failWith
	}
	if r.duplicateN > 0 {
		r.duplicateN--
		return infra.WrapRepoErr("coupon code already exists", nil, infra.KindDuplicateKey)
	}
	for _, existing := range r.coupons {
		if existing.Code() == c.Code() {
			return infra.WrapRepoErr("coupon code already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.coupons[c.ID()] = c
	return nil
}

func (r *fakeCouponRepo) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	normalized := coupon.Normalize(code)
	for _, c := range r.coupons {
		if c.Code().String() == normalized {
			return c, nil
		}
	}
	return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
}

func (r *fakeCouponRepo) FindByID(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	c, ok := r.coupons[id]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (r *fakeCouponRepo) List(_ context.Context) ([]*coupon.Coupon, error) {
	out := make([]*coupon.Coupon, 0, len(r.coupons))
	for _, c := range r.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCouponRepo) Update(_ context.Context, c *coupon.Coupon) error {
	if _, ok := r.coupons[c.ID()]; !ok {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	r.coupons[c.ID()] = c
	return nil
}

func (r *fakeCouponRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.coupons[id]; !ok {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	delete(r.coupons, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*booking.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uuid.UUID]*booking.Booking{}}
}

func (r *fakeBookingRepo) conflicts(candidate *booking.Booking) bool {
	for _, existing := range r.bookings {
		if existing.ID() == candidate.ID() {
			continue
		}
		if candidate.ConflictsWith(existing) {
			return true
		}
	}
	return false
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if r.conflicts(b) {
		return infra.WrapRepoErr("time slot already booked", nil, infra.KindConflict)
	}
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (r *fakeBookingRepo) ListAll(_ context.Context) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListPublic(_ context.Context, userEmail string) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.Status() == booking.StatusConfirmed {
			out = append(out, b)
			continue
		}
		if b.Status() == booking.StatusPending && userEmail != "" && b.Email() == userEmail {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListActiveBetween(_ context.Context, from, to time.Time) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.IsCancelled() {
			continue
		}
		if b.Slot().Start().Before(to) && b.Slot().End().After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if !b.IsCancelled() && r.conflicts(b) {
		return infra.WrapRepoErr("time slot already booked", nil, infra.KindConflict)
	}
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.bookings[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.bookings, id)
	return nil
}

type fakeSettingsRepo struct {
	settings settings.PortfolioSettings
	getErr   error
}

func (r *fakeSettingsRepo) Get(_ context.Context) (settings.PortfolioSettings, error) {
	if r.getErr != nil {
		return settings.PortfolioSettings{}, r.getErr
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s settings.PortfolioSettings) error {
	r.settings = s
	return nil
}

type notifiedBooking struct {
	bookingID uuid.UUID
	recipient string
}

type fakeNotifier struct {
	err       error
	bookings  []notifiedBooking
	contacts  []string
	recipient string
}

func (n *fakeNotifier) BookingCreated(_ context.Context, b *booking.Booking, recipient string) error {
	if n.err != nil {
		return n.err
	}
	n.bookings = append(n.bookings, notifiedBooking{bookingID: b.ID(), recipient: recipient})
	n.recipient = recipient
	return nil
}

func (n *fakeNotifier) ContactMessage(_ context.Context, recipient, fromEmail, _ string) error {
	if n.err != nil {
		return n.err
	}
	n.contacts = append(n.contacts, fromEmail)
	n.recipient = recipient
	return nil
}

type fakePhotoRepo struct {
	photos []*gallery.Photo
}

func (r *fakePhotoRepo) Create(_ context.Context, p *gallery.Photo) error {
	for _, existing := range r.photos {
		if existing.Filename() == p.Filename() {
			return infra.WrapRepoErr("photo filename already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.photos = append(r.photos, p)
	return nil
}

func (r *fakePhotoRepo) FindByID(_ context.Context, id uuid.UUID) (*gallery.Photo, error) {
	for _, p := range r.photos {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, infra.WrapRepoErr("photo not found", nil, infra.KindNotFound)
}

func (r *fakePhotoRepo) List(_ context.Context) ([]*gallery.Photo, error) {
	out := make([]*gallery.Photo, len(r.photos))
	copy(out, r.photos)
	return out, nil
}

func (r *fakePhotoRepo) Update(_ context.Context, p *gallery.Photo) error {
	for i, existing := range r.photos {
		if existing.ID() == p.ID() {
			r.photos[i] = p
			return nil
		}
	}
	return infra.WrapRepoErr("photo not found", nil, infra.KindNotFound)
}

func (r *fakePhotoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range r.photos {
		if p.ID() == id {
			r.photos = append(r.photos[:i], r.photos[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("photo not found", nil, infra.KindNotFound)
}

func (r *fakePhotoRepo) SavePositions(_ context.Context, photos []*gallery.Photo) error {
	r.photos = make([]*gallery.Photo, len(photos))
	copy(r.photos, photos)
	return nil
}

type thumbCall struct {
	filename string
	force    bool
}

type fakePhotoStore struct {
	saveErr    error
	width      int
	height     int
	removed    []string
	thumbCalls []thumbCall
}

func (s *fakePhotoStore) Save(name string, _ io.Reader, now time.Time) (string, int, int, error) {
	if s.saveErr != nil {
		return "", 0, 0, s.saveErr
	}
	w, h := s.width, s.height
	if w == 0 {
		w, h = 3000, 2000
	}
	return "1756710000000-" + name, w, h, nil
}

func (s *fakePhotoStore) Remove(filename string) error {
	s.removed = append(s.removed, filename)
	return nil
}

func (s *fakePhotoStore) EnsureThumbnail(p *gallery.Photo, force bool) (bool, error) {
	s.thumbCalls = append(s.thumbCalls, thumbCall{filename: p.Filename(), force: force})
	return true, nil
}

func (s *fakePhotoStore) RemoveThumbnail(filename string) {}
