package usecase

import (
	"context"
	"log/slog"

	"lensfolio/internal/domain/booking"
)

// Notifier sends transactional mail. Implementations must not block on
// anything beyond the single send.
type Notifier interface {
	BookingCreated(ctx context.Context, b *booking.Booking, recipient string) error
	ContactMessage(ctx context.Context, recipient, fromEmail, message string) error
}

// NotificationDispatcher resolves the photographer's address and forwards
// events to the Notifier. The recipient is the settings email when one is
// configured, otherwise the static fallback from configuration.
type NotificationDispatcher struct {
	notifier     Notifier
	settingsRepo SettingsRepository
	fallback     string
}

func NewNotificationDispatcher(notifier Notifier, settingsRepo SettingsRepository, fallback string) *NotificationDispatcher {
	return &NotificationDispatcher{
		notifier:     notifier,
		settingsRepo: settingsRepo,
		fallback:     fallback,
	}
}

func (d *NotificationDispatcher) BookingCreated(ctx context.Context, b *booking.Booking) error {
	return d.notifier.BookingCreated(ctx, b, d.recipient(ctx))
}

func (d *NotificationDispatcher) ContactMessage(ctx context.Context, fromEmail, message string) error {
	return d.notifier.ContactMessage(ctx, d.recipient(ctx), fromEmail, message)
}

func (d *NotificationDispatcher) recipient(ctx context.Context) string {
	s, err := d.settingsRepo.Get(ctx)
	if err != nil {
		slog.Warn("could not load settings for notification recipient, using fallback", "error", err)
		return d.fallback
	}
	if s.Email == "" {
		return d.fallback
	}
	return s.Email
}
