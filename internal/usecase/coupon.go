package usecase

import (
	"context"
	"errors"

	"lensfolio/internal/domain/coupon"
	"lensfolio/internal/infra"
	"lensfolio/internal/pkg/clock"
	"lensfolio/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound          = errors.New("coupon not found")
	ErrCouponInactive          = errors.New("coupon is not active")
	ErrCouponValidationFailed  = errors.New("coupon validation failed")
	ErrCouponCodeGeneration    = errors.New("could not generate a unique coupon code")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// codeGenerationAttempts bounds the retry loop on duplicate-key collisions.
// With 36^8 possible codes a second collision in a row is effectively a
// broken random source, not bad luck.
const codeGenerationAttempts = 5

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	List(ctx context.Context) ([]*coupon.Coupon, error)
	Update(ctx context.Context, c *coupon.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCouponInput struct {
	Name              string
	Email             string
	SlotDurationHours int
}

type CouponUseCase interface {
	CreateCoupon(ctx context.Context, input CreateCouponInput) (*coupon.Coupon, error)
	ValidateCoupon(ctx context.Context, rawCode string) (coupon.Grant, error)
	ListCoupons(ctx context.Context) ([]*coupon.Coupon, error)
	UpdateCoupon(ctx context.Context, id uuid.UUID, update coupon.Update) (*coupon.Coupon, error)
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
}

type couponUseCaseImpl struct {
	couponRepo CouponRepository
	clock      clock.Clock
}

func NewCouponUseCase(couponRepo CouponRepository, clock clock.Clock) CouponUseCase {
	return &couponUseCaseImpl{
		couponRepo: couponRepo,
		clock:      clock,
	}
}

// CreateCoupon generates a fresh code and persists the coupon, retrying on
// the store's unique index when a generated code collides.
func (u *couponUseCaseImpl) CreateCoupon(ctx context.Context, input CreateCouponInput) (*coupon.Coupon, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code, err := coupon.GenerateCode()
		if err != nil {
			return nil, errs.Mark(err, ErrCouponCodeGeneration)
		}

		entity, err := coupon.NewCoupon(code, input.Name, input.Email, input.SlotDurationHours, u.clock.Now())
		if err != nil {
			return nil, err
		}

		err = u.couponRepo.Create(ctx, entity)
		if err == nil {
			return entity, nil
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			continue
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil, ErrCouponCodeGeneration
}

// ValidateCoupon resolves a raw code case-insensitively and returns the
// booking grant it carries. Unknown and inactive codes are distinct errors.
func (u *couponUseCaseImpl) ValidateCoupon(ctx context.Context, rawCode string) (coupon.Grant, error) {
	entity, err := u.couponRepo.FindByCode(ctx, coupon.Normalize(rawCode))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return coupon.Grant{}, ErrCouponNotFound
		}
		return coupon.Grant{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	grant, err := entity.Validate()
	if err != nil {
		if errors.Is(err, coupon.ErrCouponInactive) {
			return coupon.Grant{}, ErrCouponInactive
		}
		return coupon.Grant{}, errs.Mark(err, ErrCouponValidationFailed)
	}
	return grant, nil
}

func (u *couponUseCaseImpl) ListCoupons(ctx context.Context) ([]*coupon.Coupon, error) {
	coupons, err := u.couponRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return coupons, nil
}

func (u *couponUseCaseImpl) UpdateCoupon(ctx context.Context, id uuid.UUID, update coupon.Update) (*coupon.Coupon, error) {
	entity, err := u.couponRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.Apply(update); err != nil {
		return nil, err
	}

	if err := u.couponRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *couponUseCaseImpl) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if err := u.couponRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
