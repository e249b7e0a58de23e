package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad
// signature, malformed payload, wrong algorithm, or expiry. Callers
// must not be able to tell the causes apart.
var ErrInvalidToken = errors.New("invalid token")

// Config holds the token service settings. The secret and TTL are
// injected at construction instead of being read from globals.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// DefaultTokenTTL is used when Config.TokenTTL is zero.
const DefaultTokenTTL = 60 * time.Minute

// Claims represents JWT claims
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates signed bearer tokens
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a token manager from config
func NewJWTManager(cfg Config) *JWTManager {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTManager{secret: []byte(cfg.Secret), ttl: ttl}
}

// Generate mints a signed token for the given subject
func (m *JWTManager) Generate(userID uint, email, role string) (string, error) {
	return m.GenerateWithTTL(userID, email, role, m.ttl)
}

// GenerateWithTTL mints a token with an explicit lifetime
func (m *JWTManager) GenerateWithTTL(userID uint, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and verifies a token. It fails closed: any problem
// yields ErrInvalidToken.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
