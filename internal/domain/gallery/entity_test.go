//go:build unit

package gallery_test

import (
	"testing"

	"lensfolio/internal/domain/gallery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhoto(t *testing.T, width, height int) *gallery.Photo {
	t.Helper()
	p, err := gallery.NewPhoto("1756710000000-sunset.jpg", "", width, height, 0)
	require.NoError(t, err)
	return p
}

func TestNewPhoto(t *testing.T) {
	t.Run("success: defaults and computed aspect ratio", func(t *testing.T) {
		p := newPhoto(t, 3000, 2000)
		assert.Equal(t, gallery.DefaultAlbum, p.Album())
		assert.Equal(t, 1, p.GridWidth())
		assert.Equal(t, 1, p.GridHeight())
		assert.InDelta(t, 1.5, p.AspectRatio(), 0.001)
	})

	t.Run("error: non-positive dimensions", func(t *testing.T) {
		_, err := gallery.NewPhoto("x.jpg", "", 0, 2000, 0)
		assert.ErrorIs(t, err, gallery.ErrInvalidDimensions)

		_, err = gallery.NewPhoto("x.jpg", "", 3000, -1, 0)
		assert.ErrorIs(t, err, gallery.ErrInvalidDimensions)
	})
}

func TestPhotoApply(t *testing.T) {
	t.Run("success: grid width change is reported", func(t *testing.T) {
		p := newPhoto(t, 3000, 2000)
		two := 2

		changed, err := p.Apply(gallery.PhotoUpdate{GridWidth: &two})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 2, p.GridWidth())
	})

	t.Run("success: same grid width is not a change", func(t *testing.T) {
		p := newPhoto(t, 3000, 2000)
		one := 1

		changed, err := p.Apply(gallery.PhotoUpdate{GridWidth: &one})
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("success: album-only update does not touch the grid", func(t *testing.T) {
		p := newPhoto(t, 3000, 2000)
		album := "Weddings"

		changed, err := p.Apply(gallery.PhotoUpdate{Album: &album})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "Weddings", p.Album())
	})

	t.Run("error: grid size out of range", func(t *testing.T) {
		p := newPhoto(t, 3000, 2000)
		three := 3

		_, err := p.Apply(gallery.PhotoUpdate{GridWidth: &three})
		assert.ErrorIs(t, err, gallery.ErrInvalidGridSize)

		_, err = p.Apply(gallery.PhotoUpdate{GridHeight: &three})
		assert.ErrorIs(t, err, gallery.ErrInvalidGridSize)
	})
}

func TestThumbnailTargetWidth(t *testing.T) {
	t.Run("single cell scales to 648", func(t *testing.T) {
		p := newPhoto(t, 3000, 2000)
		assert.Equal(t, 648, p.ThumbnailTargetWidth())
	})

	t.Run("double cell scales to 1296", func(t *testing.T) {
		p := newPhoto(t, 3000, 2000)
		two := 2
		_, err := p.Apply(gallery.PhotoUpdate{GridWidth: &two})
		require.NoError(t, err)
		assert.Equal(t, 1296, p.ThumbnailTargetWidth())
	})

	t.Run("never exceeds the original width", func(t *testing.T) {
		p := newPhoto(t, 500, 400)
		assert.Equal(t, 500, p.ThumbnailTargetWidth())
	})
}
