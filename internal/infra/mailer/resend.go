package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"lensfolio/internal/domain/booking"
	"lensfolio/internal/pkg/config"
	"lensfolio/internal/pkg/errs"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends transactional mail through the Resend API.
type ResendMailer struct {
	client       *resend.Client
	from         string
	adminBaseURL string
}

func NewResendMailer(cfg config.MailConfig) *ResendMailer {
	return &ResendMailer{
		client:       resend.NewClient(cfg.ResendAPIKey),
		from:         cfg.From,
		adminBaseURL: cfg.AdminBaseURL,
	}
}

// BookingCreated notifies the photographer about a new booking request.
func (m *ResendMailer) BookingCreated(ctx context.Context, b *booking.Booking, recipient string) error {
	start := b.Slot().Start()
	end := b.Slot().End()
	duration := int(end.Sub(start).Hours())

	htmlBody := fmt.Sprintf(`
		<h2>New Booking Request</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Coupon:</strong> %s</p>
		<hr />
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time:</strong> %s - %s</p>
		<p><strong>Duration:</strong> %d hours</p>
		<hr />
		<a href="%s/admin/bookings">View in Admin</a>
	`,
		html.EscapeString(b.Name()),
		html.EscapeString(b.Email()),
		html.EscapeString(b.CouponCode()),
		start.Format("2006-01-02"),
		start.Format("15:04"), end.Format("15:04"),
		duration,
		m.adminBaseURL,
	)

	textBody := fmt.Sprintf(
		"New Booking Request\n\nName: %s\nEmail: %s\nCoupon: %s\n\nDate: %s\nTime: %s - %s\nDuration: %d hours",
		b.Name(), b.Email(), b.CouponCode(),
		start.Format("2006-01-02"),
		start.Format("15:04"), end.Format("15:04"),
		duration,
	)

	return m.send(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{recipient},
		ReplyTo: b.Email(),
		Subject: fmt.Sprintf("New Booking: %s", b.Name()),
		Html:    htmlBody,
		Text:    textBody,
	})
}

// ContactMessage forwards a contact form submission to the photographer.
func (m *ResendMailer) ContactMessage(ctx context.Context, recipient, fromEmail, message string) error {
	htmlBody := fmt.Sprintf(`
		<h2>New Contact Form Message</h2>
		<p><strong>From:</strong> %s</p>
		<hr />
		<p>%s</p>
	`,
		html.EscapeString(fromEmail),
		strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"),
	)

	textBody := fmt.Sprintf("New Contact Form Message\n\nFrom: %s\n\n%s", fromEmail, message)

	return m.send(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{recipient},
		ReplyTo: fromEmail,
		Subject: fmt.Sprintf("Contact Form: %s", fromEmail),
		Html:    htmlBody,
		Text:    textBody,
	})
}

func (m *ResendMailer) send(ctx context.Context, req *resend.SendEmailRequest) error {
	if _, err := m.client.Emails.SendWithContext(ctx, req); err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	return nil
}
