//go:build unit

package settings_test

import (
	"testing"

	"lensfolio/internal/domain/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("success: partial merge keeps unset fields", func(t *testing.T) {
		s := settings.Defaults()
		name := "Anna Kowalska"
		location := "Warsaw"

		require.NoError(t, s.Apply(settings.Update{PhotographerName: &name, Location: &location}))

		assert.Equal(t, "Anna Kowalska", s.PhotographerName)
		assert.Equal(t, "Warsaw", s.Location)
		assert.Equal(t, "Photography Portfolio", s.SiteTitle)
	})

	t.Run("success: any saved change marks the site configured", func(t *testing.T) {
		s := settings.Defaults()
		assert.False(t, s.IsConfigured)

		bio := "Portrait photographer"
		require.NoError(t, s.Apply(settings.Update{Bio: &bio}))
		assert.True(t, s.IsConfigured)
	})

	t.Run("success: theme replaced wholesale", func(t *testing.T) {
		s := settings.Defaults()
		theme := settings.Theme{Preset: settings.PresetDark, FontFamily: "Inter"}

		require.NoError(t, s.Apply(settings.Update{Theme: &theme}))
		assert.Equal(t, settings.PresetDark, s.Theme.Preset)
		assert.Equal(t, "Inter", s.Theme.FontFamily)
	})

	t.Run("error: invalid theme rejected before merge", func(t *testing.T) {
		s := settings.Defaults()
		name := "Anna"
		theme := settings.Theme{Preset: "vaporwave"}

		err := s.Apply(settings.Update{PhotographerName: &name, Theme: &theme})
		assert.ErrorIs(t, err, settings.ErrInvalidThemePreset)
		assert.Equal(t, "Your Name", s.PhotographerName)
		assert.False(t, s.IsConfigured)
	})
}
