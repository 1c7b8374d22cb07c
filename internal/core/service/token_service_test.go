package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/escoffier/enrollment-system/internal/core/ports"
)

func TestTokenService_Issue(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)

	signed, err := svc.Issue(ports.TokenIdentity{Email: "alice@example.com", Name: "Alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["email"] != "alice@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if claims["name"] != "Alice" {
		t.Fatalf("unexpected name claim: %v", claims["name"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing")
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Fatalf("expected ~24h expiry, got %v", ttl)
	}
}

func TestTokenService_Issue_RequiresEmail(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Issue(ports.TokenIdentity{}); err == nil {
		t.Fatalf("expected error for empty identity")
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.tokenTTL != defaultTokenTTL {
		t.Fatalf("expected default TTL, got %v", svc.tokenTTL)
	}
}
