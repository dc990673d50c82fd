package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/domain/account"
	"contacts-api/internal/infrastructure/jwt"
)

const tokenTTL = time.Hour

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(a *account.Account, requestPassword string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(a.UUID.String(), a.Email, tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
