// Package auth issues and verifies the identity tokens presented by clients.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// Issuer is set on every token and required on validation.
const Issuer = "nt-data-lab"

// clockSkew tolerated on exp and iat.
const clockSkew = 30 * time.Second

// ErrMissingEmail is returned for tokens without an email claim.
var ErrMissingEmail = errors.New("token has no email claim")

// Claims identify the caller by email. Subject mirrors Email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 identity tokens.
type JWTManager struct {
	secret []byte
	expiry time.Duration
	clock  clockwork.Clock
	parser *jwt.Parser
}

// Option configures a JWTManager.
type Option func(*JWTManager)

// WithClock replaces the wall clock used for issuing and validating.
func WithClock(clock clockwork.Clock) Option {
	return func(j *JWTManager) { j.clock = clock }
}

// NewJWTManager creates a manager whose tokens live for expiry.
func NewJWTManager(secret string, expiry time.Duration, opts ...Option) *JWTManager {
	j := &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(j)
	}
	j.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(j.clock.Now),
	)
	return j
}

// GenerateToken signs a token for email.
func (j *JWTManager) GenerateToken(email string) (string, error) {
	email = strings.TrimSpace(email)
	now := j.clock.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// ValidateToken verifies signature, issuer and expiry and returns the claims.
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, err := j.parser.ParseWithClaims(tokenString, claims, j.key); err != nil {
		return nil, err
	}
	if claims.Email == "" {
		return nil, ErrMissingEmail
	}
	return claims, nil
}

func (j *JWTManager) key(*jwt.Token) (interface{}, error) {
	return j.secret, nil
}
