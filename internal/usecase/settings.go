package usecase

import (
	"context"
	"errors"

	"lensfolio/internal/domain/settings"
	"lensfolio/internal/pkg/errs"
)

var ErrInvalidSettings = errors.New("invalid settings")

type SettingsRepository interface {
	Get(ctx context.Context) (settings.PortfolioSettings, error)
	Save(ctx context.Context, s settings.PortfolioSettings) error
}

type SettingsUseCase interface {
	GetSettings(ctx context.Context) (settings.PortfolioSettings, error)
	UpdateSettings(ctx context.Context, update settings.Update) (settings.PortfolioSettings, error)
	ThemeCSS(ctx context.Context) (string, error)
}

type settingsUseCaseImpl struct {
	settingsRepo SettingsRepository
}

func NewSettingsUseCase(settingsRepo SettingsRepository) SettingsUseCase {
	return &settingsUseCaseImpl{settingsRepo: settingsRepo}
}

func (u *settingsUseCaseImpl) GetSettings(ctx context.Context) (settings.PortfolioSettings, error) {
	s, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return settings.PortfolioSettings{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return s, nil
}

func (u *settingsUseCaseImpl) UpdateSettings(ctx context.Context, update settings.Update) (settings.PortfolioSettings, error) {
	s, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return settings.PortfolioSettings{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := s.Apply(update); err != nil {
		return settings.PortfolioSettings{}, errs.Mark(err, ErrInvalidSettings)
	}

	if err := u.settingsRepo.Save(ctx, s); err != nil {
		return settings.PortfolioSettings{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return s, nil
}

// ThemeCSS renders the site's CSS custom-property block from the stored theme.
func (u *settingsUseCaseImpl) ThemeCSS(ctx context.Context) (string, error) {
	s, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return settings.GenerateCSS(s), nil
}
