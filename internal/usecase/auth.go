package usecase

import (
	"errors"
	"time"

	"lensfolio/internal/pkg/jwt"
	"lensfolio/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type AuthUseCase interface {
	Login(plainPassword string) (token string, expiresAt time.Time, err error)
	TokenDuration() time.Duration
}

type authUseCaseImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

// NewAuthUseCase takes the bcrypt hash of the admin password; hashing the
// configured plaintext happens once at bootstrap.
func NewAuthUseCase(passwordHash string, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

func (a *authUseCaseImpl) Login(plainPassword string) (string, time.Time, error) {
	if err := password.ComparePassword(a.passwordHash, plainPassword); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return "", time.Time{}, ErrTokenGeneration
	}
	return token, expiresAt, nil
}

func (a *authUseCaseImpl) TokenDuration() time.Duration {
	return a.jwtService.TokenDuration()
}
