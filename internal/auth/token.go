package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/accounting-service/internal/domain"
)

// ErrInvalidToken covers every verification failure: bad signature,
// structurally malformed token, or expiry. Rejection is deliberately
// uniform; callers never learn which check failed.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies the signed tokens shared by the
// gateway and every backend service. It is stateless apart from the
// symmetric key loaded at startup, so a single instance is safe for
// concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager signing with the shared secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 10 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the token payload: subject and expiry ride in the
// registered claims, the principal kind in the role claim.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Mint builds and signs a token for the subject with the fixed validity
// window. A new login always mints a new token; claims are never updated.
func (tm *TokenManager) Mint(subject string, role domain.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ExtractSubject verifies the token and returns its subject claim.
func (tm *TokenManager) ExtractSubject(tokenStr string) (string, error) {
	claims, err := tm.parse(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractRole verifies the token and returns its role claim.
func (tm *TokenManager) ExtractRole(tokenStr string) (domain.Role, error) {
	claims, err := tm.parse(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

// Validate reports whether the token verifies against the shared key and
// has not expired. It never returns claim data, only the gate decision.
func (tm *TokenManager) Validate(tokenStr string) bool {
	_, err := tm.parse(tokenStr)
	return err == nil
}

func (tm *TokenManager) parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
