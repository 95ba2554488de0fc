package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"lensfolio/internal/domain/gallery"
	"lensfolio/internal/infra"
	"lensfolio/internal/pkg/clock"
	"lensfolio/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrInvalidPhotoUpload  = errors.New("invalid photo upload")
	ErrInvalidReorder      = errors.New("invalid reorder request")
	ErrDuplicatePhoto      = errors.New("photo already exists")
	ErrThumbnailGeneration = errors.New("thumbnail generation failed")
)

const defaultMoveSteps = 10

type PhotoRepository interface {
	Create(ctx context.Context, p *gallery.Photo) error
	FindByID(ctx context.Context, id uuid.UUID) (*gallery.Photo, error)
	List(ctx context.Context) ([]*gallery.Photo, error)
	Update(ctx context.Context, p *gallery.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
	SavePositions(ctx context.Context, photos []*gallery.Photo) error
}

// PhotoStore is the on-disk side of the photo pipeline: originals and
// generated thumbnails.
type PhotoStore interface {
	Save(name string, r io.Reader, now time.Time) (filename string, width, height int, err error)
	Remove(filename string) error
	EnsureThumbnail(p *gallery.Photo, force bool) (bool, error)
	RemoveThumbnail(filename string)
}

type UploadPhotoInput struct {
	Filename string
	Album    string
	File     io.Reader
}

// MoveDirection is the admin panel's button-move direction.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// ReorderInput carries either a drag-drop move (FromIndex/ToIndex) or a
// button move (ID + Direction + Steps).
type ReorderInput struct {
	FromIndex *int
	ToIndex   *int
	ID        *uuid.UUID
	Direction *MoveDirection
	Steps     *int
}

type PhotoUseCase interface {
	ListPhotos(ctx context.Context) ([]*gallery.Photo, error)
	UploadPhoto(ctx context.Context, input UploadPhotoInput) (*gallery.Photo, error)
	UpdatePhoto(ctx context.Context, id uuid.UUID, update gallery.PhotoUpdate) (*gallery.Photo, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) error
	ReorderPhotos(ctx context.Context, input ReorderInput) ([]*gallery.Photo, error)
}

type photoUseCaseImpl struct {
	photoRepo PhotoRepository
	store     PhotoStore
	clock     clock.Clock
}

func NewPhotoUseCase(photoRepo PhotoRepository, store PhotoStore, clock clock.Clock) PhotoUseCase {
	return &photoUseCaseImpl{
		photoRepo: photoRepo,
		store:     store,
		clock:     clock,
	}
}

// ListPhotos returns the gallery in display order, regenerating any missing
// or stale thumbnails along the way. A thumbnail failure only logs; the
// gallery still renders from originals.
func (u *photoUseCaseImpl) ListPhotos(ctx context.Context) ([]*gallery.Photo, error) {
	photos, err := u.photoRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, p := range photos {
		if _, err := u.store.EnsureThumbnail(p, false); err != nil {
			slog.Warn("failed to ensure thumbnail", "filename", p.Filename(), "error", err)
		}
	}
	return photos, nil
}

func (u *photoUseCaseImpl) UploadPhoto(ctx context.Context, input UploadPhotoInput) (*gallery.Photo, error) {
	if input.Filename == "" || input.File == nil {
		return nil, ErrInvalidPhotoUpload
	}

	filename, width, height, err := u.store.Save(input.Filename, input.File, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPhotoUpload)
	}

	existing, err := u.photoRepo.List(ctx)
	if err != nil {
		u.removeStored(filename)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	photo, err := gallery.NewPhoto(filename, input.Album, width, height, len(existing))
	if err != nil {
		u.removeStored(filename)
		return nil, errs.Mark(err, ErrInvalidPhotoUpload)
	}

	// Thumbnail trouble should not lose the upload; it regenerates on the
	// next gallery listing.
	if _, err := u.store.EnsureThumbnail(photo, true); err != nil {
		slog.Error("failed to generate thumbnail", "filename", filename, "error", err)
	}

	if err := u.photoRepo.Create(ctx, photo); err != nil {
		u.removeStored(filename)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePhoto
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return photo, nil
}

func (u *photoUseCaseImpl) UpdatePhoto(ctx context.Context, id uuid.UUID, update gallery.PhotoUpdate) (*gallery.Photo, error) {
	photo, err := u.photoRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	gridWidthChanged, err := photo.Apply(update)
	if err != nil {
		return nil, err
	}

	if err := u.photoRepo.Update(ctx, photo); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if gridWidthChanged {
		if _, err := u.store.EnsureThumbnail(photo, true); err != nil {
			slog.Warn("failed to regenerate thumbnail", "filename", photo.Filename(), "error", err)
		}
	}
	return photo, nil
}

func (u *photoUseCaseImpl) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	photo, err := u.photoRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPhotoNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.photoRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPhotoNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.removeStored(photo.Filename())
	return nil
}

// ReorderPhotos rewrites gallery positions for either move style the admin
// panel sends and returns the new ordering.
func (u *photoUseCaseImpl) ReorderPhotos(ctx context.Context, input ReorderInput) ([]*gallery.Photo, error) {
	photos, err := u.photoRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch {
	case input.FromIndex != nil && input.ToIndex != nil:
		from, to := *input.FromIndex, *input.ToIndex
		if from < 0 || from >= len(photos) || to < 0 || to >= len(photos) {
			return nil, ErrInvalidReorder
		}
		photos = moveElement(photos, from, to)

	case input.ID != nil && input.Direction != nil:
		if *input.Direction != MoveUp && *input.Direction != MoveDown {
			return nil, ErrInvalidReorder
		}

		current := -1
		for i, p := range photos {
			if p.ID() == *input.ID {
				current = i
				break
			}
		}
		if current == -1 {
			return nil, ErrPhotoNotFound
		}

		steps := patchSteps(input.Steps)
		target := current - steps
		if *input.Direction == MoveDown {
			target = current + steps
		}
		if target < 0 {
			target = 0
		}
		if target > len(photos)-1 {
			target = len(photos) - 1
		}
		if target != current {
			photos = moveElement(photos, current, target)
		}

	default:
		return nil, ErrInvalidReorder
	}

	for i, p := range photos {
		p.SetPosition(i)
	}
	if err := u.photoRepo.SavePositions(ctx, photos); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return photos, nil
}

func (u *photoUseCaseImpl) removeStored(filename string) {
	if err := u.store.Remove(filename); err != nil {
		slog.Warn("failed to remove stored photo", "filename", filename, "error", err)
	}
}

func moveElement(photos []*gallery.Photo, from, to int) []*gallery.Photo {
	p := photos[from]
	photos = append(photos[:from], photos[from+1:]...)

	out := make([]*gallery.Photo, 0, len(photos)+1)
	out = append(out, photos[:to]...)
	out = append(out, p)
	out = append(out, photos[to:]...)
	return out
}

func patchSteps(steps *int) int {
	if steps == nil || *steps <= 0 {
		return defaultMoveSteps
	}
	return *steps
}
