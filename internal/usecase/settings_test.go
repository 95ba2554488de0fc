//go:build unit

package usecase_test

import (
	"context"
	"strings"
	"testing"

	"lensfolio/internal/domain/settings"
	"lensfolio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUseCase_UpdateSettings(t *testing.T) {
	t.Run("success: partial update marks the site configured", func(t *testing.T) {
		repo := &fakeSettingsRepo{settings: settings.Defaults()}
		uc := usecase.NewSettingsUseCase(repo)

		name := "Marta Nowak"
		updated, err := uc.UpdateSettings(context.Background(), settings.Update{PhotographerName: &name})

		require.NoError(t, err)
		assert.Equal(t, "Marta Nowak", updated.PhotographerName)
		assert.True(t, updated.IsConfigured)
		assert.True(t, repo.settings.IsConfigured)
	})

	t.Run("error: invalid theme leaves stored settings untouched", func(t *testing.T) {
		repo := &fakeSettingsRepo{settings: settings.Defaults()}
		uc := usecase.NewSettingsUseCase(repo)

		bad := settings.Theme{Preset: "vaporwave"}
		_, err := uc.UpdateSettings(context.Background(), settings.Update{Theme: &bad})

		assert.ErrorIs(t, err, usecase.ErrInvalidSettings)
		assert.False(t, repo.settings.IsConfigured)
	})
}

func TestSettingsUseCase_ThemeCSS(t *testing.T) {
	t.Run("renders custom-property block from the stored theme", func(t *testing.T) {
		repo := &fakeSettingsRepo{settings: settings.Defaults()}
		uc := usecase.NewSettingsUseCase(repo)

		css, err := uc.ThemeCSS(context.Background())

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(css, ":root {"))
		assert.Contains(t, css, "--color-primary:")
	})
}
