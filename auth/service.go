package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken signals a token that failed signature, shape or expiry
// checks. Callers treat every failure mode the same, so no detail leaks.
var ErrInvalidToken = errors.New("auth: invalid token")

// TokenTTL bounds the blast radius of a leaked cookie. There is no
// revocation list; expiry is the only invalidation mechanism.
const TokenTTL = 6 * time.Hour

// Service issues and verifies stateless session tokens.
type Service struct {
	secret []byte
}

// NewService creates a token service around the shared signing secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// IssueToken signs a session token asserting the given email, valid for six
// hours from now.
func (s *Service) IssueToken(email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("auth: email required")
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks signature and expiry and returns the embedded claims.
// Tampering, expiry and malformed input all come back as ErrInvalidToken.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
