package usecase

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
)

var (
	ErrContactFieldsRequired = errors.New("email and message are required")
	ErrInvalidContactEmail   = errors.New("invalid email format")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactUseCase interface {
	SendMessage(ctx context.Context, fromEmail, message string) error
}

type contactUseCaseImpl struct {
	dispatcher *NotificationDispatcher
}

func NewContactUseCase(dispatcher *NotificationDispatcher) ContactUseCase {
	return &contactUseCaseImpl{dispatcher: dispatcher}
}

// SendMessage validates a contact form submission and forwards it. Delivery
// failure is logged only; the visitor still sees success.
func (c *contactUseCaseImpl) SendMessage(ctx context.Context, fromEmail, message string) error {
	if fromEmail == "" || message == "" {
		return ErrContactFieldsRequired
	}
	if !emailRegex.MatchString(fromEmail) {
		return ErrInvalidContactEmail
	}

	if err := c.dispatcher.ContactMessage(ctx, fromEmail, message); err != nil {
		slog.Error("failed to send contact message", "error", err)
	}
	return nil
}
