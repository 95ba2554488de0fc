package repository

import (
	"context"
	"errors"
	"log/slog"

	"lensfolio/internal/domain/gallery"
	"lensfolio/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PhotoRepository struct {
	pool *pgxpool.Pool
}

func NewPhotoRepository(pool *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{pool: pool}
}

func (r *PhotoRepository) Create(ctx context.Context, p *gallery.Photo) error {
	query := `
		INSERT INTO photos (id, filename, album, width, height, aspect_ratio, grid_width, grid_height, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID(), p.Filename(), p.Album(), p.Width(), p.Height(),
		p.AspectRatio(), p.GridWidth(), p.GridHeight(), p.Position(),
	)
	if err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return infra.WrapRepoErr("photo filename already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create photo", err)
	}
	return nil
}

func (r *PhotoRepository) FindByID(ctx context.Context, id uuid.UUID) (*gallery.Photo, error) {
	query := selectPhoto + ` WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	p, err := scanPhoto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("photo not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find photo", err)
	}
	return p, nil
}

func (r *PhotoRepository) List(ctx context.Context) ([]*gallery.Photo, error) {
	query := selectPhoto + ` ORDER BY sort_order`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list photos", err)
	}
	defer rows.Close()

	var photos []*gallery.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan photo", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read photos", err)
	}
	return photos, nil
}

func (r *PhotoRepository) Update(ctx context.Context, p *gallery.Photo) error {
	query := `
		UPDATE photos
		SET album = $2, grid_width = $3, grid_height = $4, sort_order = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID(), p.Album(), p.GridWidth(), p.GridHeight(), p.Position(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update photo", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("photo not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete photo", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("photo not found", nil, infra.KindNotFound)
	}
	return nil
}

// SavePositions rewrites the gallery order in one transaction.
func (r *PhotoRepository) SavePositions(ctx context.Context, photos []*gallery.Photo) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin reorder", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback photo reorder", "error", rollbackErr)
		}
	}()

	for _, p := range photos {
		if _, err := tx.Exec(ctx,
			`UPDATE photos SET sort_order = $2 WHERE id = $1`,
			p.ID(), p.Position(),
		); err != nil {
			return infra.WrapRepoErr("failed to update photo order", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit reorder", err)
	}
	return nil
}

const selectPhoto = `
	SELECT id, filename, album, width, height, aspect_ratio, grid_width, grid_height, sort_order
	FROM photos
`

func scanPhoto(row pgx.Row) (*gallery.Photo, error) {
	var (
		id          uuid.UUID
		filename    string
		album       string
		width       int
		height      int
		aspectRatio float64
		gridWidth   int
		gridHeight  int
		sortOrder   int
	)

	if err := row.Scan(&id, &filename, &album, &width, &height, &aspectRatio, &gridWidth, &gridHeight, &sortOrder); err != nil {
		return nil, err
	}

	return gallery.ReconstructPhoto(id, filename, album, width, height, aspectRatio, gridWidth, gridHeight, sortOrder), nil
}
