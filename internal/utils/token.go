package utils

import (
	"errors"
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// SessionToken represents a signed JWT along with its expiry. The Token field
// contains the serialized JWT string that clients carry in the Authorization
// header. Tokens are stateless: there is no server-side session record and no
// revocation list, so logout amounts to the client discarding its copy.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Identity is the decoded assertion a valid token carries.
type Identity struct {
	UserID   uint64
	Username string
}

// ErrInvalidToken is returned by VerifyToken for any token that cannot be
// accepted: bad signature, malformed payload, wrong signing method, or an
// expiry at or before the current time. Callers do not need to distinguish
// the cases.
var ErrInvalidToken = errors.New("invalid token")

// NewSessionToken builds and signs an HS256 JWT asserting a user identity.
// The claims are: subject (sub) carrying the numeric user id, username,
// expiration (exp) set ttl from now, and issued at (iat). No clock-skew
// leeway is applied on either side.
func NewSessionToken(secret string, userID uint64, username string, ttl time.Duration) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// VerifyToken parses and validates a raw token string and returns the
// identity it asserts. Any failure collapses into ErrInvalidToken.
func VerifyToken(secret, raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject any signing method other than HMAC to avoid algorithm
		// confusion with asymmetric keys.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	// The subject must be a non-negative integral number; uint64(sub) would
	// silently truncate a fractional value onto another user's id.
	sub, ok := claims["sub"].(float64)
	if !ok || sub < 0 || sub != math.Trunc(sub) {
		return Identity{}, ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: uint64(sub), Username: username}, nil
}
