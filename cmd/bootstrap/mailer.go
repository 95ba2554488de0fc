package bootstrap

import (
	"lensfolio/internal/infra/mailer"
	"lensfolio/internal/pkg/config"
	"lensfolio/internal/usecase"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewResendMailer,
			fx.As(new(usecase.Notifier)),
		),
	),
)

func NewResendMailer(cfg config.Config) *mailer.ResendMailer {
	return mailer.NewResendMailer(cfg.Mail)
}
