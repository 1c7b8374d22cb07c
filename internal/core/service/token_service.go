package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/escoffier/enrollment-system/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues HS256 bearer tokens for a caller-supplied identity.
// There is no refresh mechanism: a token is valid for its fixed TTL and the
// client requests a new one at sign-in.
type TokenService struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &TokenService{secret: secret, tokenTTL: tokenTTL}
}

// Issue signs a token carrying the identity's email claim.
func (s *TokenService) Issue(identity ports.TokenIdentity) (string, error) {
	if identity.Email == "" {
		return "", errors.New("token identity requires an email")
	}

	claims := jwt.MapClaims{
		"email": identity.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	if identity.Name != "" {
		claims["name"] = identity.Name
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
