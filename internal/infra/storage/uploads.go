package storage

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"lensfolio/internal/pkg/errs"

	_ "golang.org/x/image/webp"
)

var (
	ErrNoFile          = errs.New("no file provided")
	ErrUnsupportedType = errs.New("unsupported image type")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadStore keeps photo originals on disk under a single uploads directory,
// with generated thumbnails in an uploads/thumbnails subdirectory.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "thumbnails"), 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create uploads directory")
	}
	return &UploadStore{dir: dir}, nil
}

func (s *UploadStore) Dir() string {
	return s.dir
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeCharRe = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// SanitizeFilename strips unsafe characters and prefixes a timestamp so
// repeated uploads of the same file never collide.
func SanitizeFilename(name string, now time.Time) string {
	name = filepath.Base(name)
	name = whitespaceRe.ReplaceAllString(name, "-")
	name = unsafeCharRe.ReplaceAllString(name, "")
	return fmt.Sprintf("%d-%s", now.UnixMilli(), name)
}

// Save writes an uploaded original to disk and returns its stored filename
// and decoded pixel dimensions.
func (s *UploadStore) Save(name string, r io.Reader, now time.Time) (filename string, width, height int, err error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return "", 0, 0, ErrUnsupportedType
	}

	filename = SanitizeFilename(name, now)
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, 0, errs.Wrap(err, "failed to create upload file")
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", 0, 0, errs.Wrap(err, "failed to write upload file")
	}
	if err = f.Close(); err != nil {
		os.Remove(path)
		return "", 0, 0, errs.Wrap(err, "failed to write upload file")
	}

	width, height, err = decodeDimensions(path)
	if err != nil {
		os.Remove(path)
		return "", 0, 0, err
	}
	return filename, width, height, nil
}

// Remove deletes an original and its thumbnail. Missing files are not an error.
func (s *UploadStore) Remove(filename string) error {
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove upload")
	}
	if err := os.Remove(s.thumbnailPath(filename)); err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove thumbnail")
	}
	return nil
}

func (s *UploadStore) originalPath(filename string) string {
	return filepath.Join(s.dir, filename)
}

func (s *UploadStore) thumbnailPath(filename string) string {
	return filepath.Join(s.dir, "thumbnails", filename)
}

func decodeDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, errs.Wrap(err, "failed to open image")
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, errs.Mark(errs.Wrap(err, "failed to decode image"), ErrUnsupportedType)
	}
	return cfg.Width, cfg.Height, nil
}
