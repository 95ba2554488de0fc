package repository

import (
	"context"
	"errors"
	"time"

	"lensfolio/internal/domain/coupon"
	"lensfolio/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	query := `
		INSERT INTO coupons (id, code, name, email, slot_duration_hours, is_active, created_at, used_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID(), c.Code().String(), c.Name(), c.Email(),
		c.SlotDurationHours(), c.IsActive(), c.CreatedAt(), c.UsedAt(),
	)
	if err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	query := selectCoupon + ` WHERE upper(code) = upper($1)`
	return r.queryOne(ctx, query, code)
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	query := selectCoupon + ` WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

func (r *CouponRepository) List(ctx context.Context) ([]*coupon.Coupon, error) {
	query := selectCoupon + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var coupons []*coupon.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon", err)
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupons", err)
	}
	return coupons, nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	query := `
		UPDATE coupons
		SET name = $2, email = $3, slot_duration_hours = $4, is_active = $5, used_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		c.ID(), c.Name(), c.Email(), c.SlotDurationHours(), c.IsActive(), c.UsedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectCoupon = `
	SELECT id, code, name, email, slot_duration_hours, is_active, created_at, used_at
	FROM coupons
`

func (r *CouponRepository) queryOne(ctx context.Context, query string, arg any) (*coupon.Coupon, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	c, err := scanCoupon(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return c, nil
}

func scanCoupon(row pgx.Row) (*coupon.Coupon, error) {
	var (
		id                uuid.UUID
		code              string
		name              string
		email             string
		slotDurationHours int
		isActive          bool
		createdAt         time.Time
		usedAt            *time.Time
	)

	if err := row.Scan(&id, &code, &name, &email, &slotDurationHours, &isActive, &createdAt, &usedAt); err != nil {
		return nil, err
	}

	return coupon.ReconstructCoupon(
		id, coupon.Code(code), name, email, slotDurationHours, isActive, createdAt, usedAt,
	), nil
}
