package components

import (
	"lensfolio/internal/pkg/clock"
	"lensfolio/internal/pkg/config"
	"lensfolio/internal/pkg/jwt"
	"lensfolio/internal/pkg/password"
	"lensfolio/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		NewAuthUseCase,
		NewNotificationDispatcher,
		usecase.NewCouponUseCase,
		usecase.NewBookingUseCase,
		usecase.NewPhotoUseCase,
		usecase.NewSettingsUseCase,
		usecase.NewContactUseCase,
	),
)

// The admin password arrives as plaintext configuration; it is hashed once
// here so the login path only ever sees the bcrypt digest.
func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service) (usecase.AuthUseCase, error) {
	hash, err := password.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, err
	}
	return usecase.NewAuthUseCase(hash, jwtService), nil
}

func NewNotificationDispatcher(
	notifier usecase.Notifier,
	settingsRepo usecase.SettingsRepository,
	cfg config.Config,
) *usecase.NotificationDispatcher {
	return usecase.NewNotificationDispatcher(notifier, settingsRepo, cfg.Mail.ContactEmail)
}
