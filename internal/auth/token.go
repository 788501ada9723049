// Package auth issues and verifies the signed identity tokens carried in the
// x-auth-token header, and hashes passwords for storage.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the payload embedded in every token: who the caller is and
// whether they may hit admin-only routes.
type Identity struct {
	UserID  uint64
	IsAdmin bool
}

// ErrInvalidToken covers every verification failure: malformed string, wrong
// signature, wrong algorithm, expired claim. Callers must not learn which,
// so tampering and expiry are indistinguishable from the outside.
var ErrInvalidToken = errors.New("invalid token")

// Tokens signs and verifies HS256 identity tokens with a shared secret.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens returns a token service signing with the given secret. ttlMin is
// the token lifetime in minutes.
func NewTokens(secret string, ttlMin int) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: time.Duration(ttlMin) * time.Minute}
}

// Issue builds and signs a token for the identity. Claims: sub (user id),
// is_admin, jti (random uuid), iat and exp.
func (t *Tokens) Issue(id Identity) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      id.UserID,
		"is_admin": id.IsAdmin,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token string, returning the embedded
// identity. Only HMAC signatures are accepted; any parse or validation
// failure comes back as ErrInvalidToken.
func (t *Tokens) Verify(raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub < 0 {
		return Identity{}, ErrInvalidToken
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return Identity{UserID: uint64(sub), IsAdmin: isAdmin}, nil
}
