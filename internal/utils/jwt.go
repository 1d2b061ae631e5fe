package utils // package utils provides helper functions for token creation and verification

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Roles embedded in session tokens.  Every protected route requires one of
// these; the middleware rejects anything else.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Claims is the decoded payload of a session token: who the caller is
// (Subject), what they may do (Role) and a human identifier (Name, the
// customer's email or the admin's username).  Tokens are stateless; the
// only way a token stops working is by reaching its expiry.
type Claims struct {
	Subject uint64    // subject id (customer or admin id)
	Role    string    // "customer" or "admin"
	Name    string    // email for customers, username for admins
	Expires time.Time // absolute UTC expiry
}

// Verification failures.  ErrTokenExpired is split out so callers can tell
// an aged session from a forged one, though both map to the same HTTP
// response.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// NewSessionToken builds and signs an HS256 JWT for a subject.  The token
// embeds the subject id (sub), role, identifying name, issue time (iat) and
// an absolute expiry (exp) ttlHours from now.  There is no refresh
// mechanism: an expired token means re-login.
func NewSessionToken(secret string, subject uint64, role, name string, ttlHours int) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"name": name,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// VerifySessionToken parses and validates a signed token, returning its
// claims.  The signing method is pinned to HMAC so a token cannot downgrade
// the algorithm.  Expired or tampered tokens fail with ErrTokenExpired or
// ErrTokenInvalid respectively.
func VerifySessionToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}

	var c Claims
	// Numeric JSON values decode as float64.
	sub, ok := mc["sub"].(float64)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}
	c.Subject = uint64(sub)
	if c.Role, ok = mc["role"].(string); !ok {
		return Claims{}, ErrTokenInvalid
	}
	c.Name, _ = mc["name"].(string)
	if exp, ok := mc["exp"].(float64); ok {
		c.Expires = time.Unix(int64(exp), 0).UTC()
	}
	return c, nil
}
