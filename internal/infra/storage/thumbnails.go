package storage

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lensfolio/internal/domain/gallery"
	"lensfolio/internal/pkg/errs"

	"golang.org/x/image/draw"
)

const jpegThumbnailQuality = 82

// EnsureThumbnail generates a grid-sized thumbnail for a photo if it is
// missing or stale. Returns true when a new thumbnail was written.
func (s *UploadStore) EnsureThumbnail(photo *gallery.Photo, force bool) (bool, error) {
	originalPath := s.originalPath(photo.Filename())
	thumbPath := s.thumbnailPath(photo.Filename())
	targetWidth := photo.ThumbnailTargetWidth()

	if _, err := os.Stat(originalPath); err != nil {
		return false, errs.Wrap(err, "original file not found")
	}

	if !force && !s.needsRegeneration(originalPath, thumbPath, targetWidth) {
		return false, nil
	}

	ext := strings.ToLower(filepath.Ext(photo.Filename()))
	if ext == ".webp" {
		// webp encoding is not available; serve the original as-is.
		if err := copyFile(originalPath, thumbPath); err != nil {
			return false, err
		}
		return true, nil
	}

	src, err := decodeImage(originalPath)
	if err != nil {
		return false, err
	}

	if err := writeScaled(src, thumbPath, targetWidth, ext); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveThumbnail deletes a photo's thumbnail. Missing files are ignored.
func (s *UploadStore) RemoveThumbnail(filename string) {
	_ = os.Remove(s.thumbnailPath(filename))
}

// needsRegeneration reports whether the thumbnail is missing, older than the
// original, or narrower than the current grid target.
func (s *UploadStore) needsRegeneration(originalPath, thumbPath string, targetWidth int) bool {
	origInfo, err := os.Stat(originalPath)
	if err != nil {
		return true
	}
	thumbInfo, err := os.Stat(thumbPath)
	if err != nil {
		return true
	}
	if origInfo.ModTime().After(thumbInfo.ModTime()) {
		return true
	}

	width, _, err := decodeDimensions(thumbPath)
	if err != nil {
		return true
	}
	return width+1 < targetWidth
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode image")
	}
	return img, nil
}

func writeScaled(src image.Image, path string, targetWidth int, ext string) error {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if targetWidth > srcW {
		targetWidth = srcW
	}
	targetHeight := int(float64(srcH)*float64(targetWidth)/float64(srcW) + 0.5)
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(err, "failed to create thumbnail")
	}
	defer f.Close()

	switch ext {
	case ".png":
		err = (&png.Encoder{CompressionLevel: png.BestCompression}).Encode(f, dst)
	default:
		err = jpeg.Encode(f, dst, &jpeg.Options{Quality: jpegThumbnailQuality})
	}
	if err != nil {
		return errs.Wrap(err, "failed to encode thumbnail")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errs.Wrap(err, "failed to open original")
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errs.Wrap(err, "failed to create thumbnail")
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errs.Wrap(err, "failed to copy thumbnail")
	}
	return errs.Wrap(out.Close(), "failed to copy thumbnail")
}
