// Package auth issues and verifies the bearer tokens that carry the user id
// into the shop. Nothing past the HTTP edge re-checks identity.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/shopfront/pkg/apperr"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "shopfront"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs an HS256 token whose subject is userID.
func (j *JWT) Issue(userID, email string) (string, error) {
	now := j.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses token and returns its claims. Every failure unwraps to
// apperr.ErrUnauthenticated.
func (j *JWT) Verify(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, fmt.Errorf("token expired: %w", apperr.ErrUnauthenticated)
		}
		return Claims{}, fmt.Errorf("invalid token: %w", apperr.ErrUnauthenticated)
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("token has no subject: %w", apperr.ErrUnauthenticated)
	}
	return claims, nil
}
