package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what a successfully parsed token yields. The role is
// embedded at issuance: a role change only takes effect at the next
// login, which saves a storage round-trip on every request at the cost
// of a bounded staleness window.
type Claims struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and parses signed, time-bounded session tokens.
// The signing key is set once at construction and only read afterwards,
// so a single codec is safe for concurrent use across requests.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec signing with HMAC-SHA256.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime so callers can report
// expiry to clients.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue encodes subject and role into a signed token valid from now
// until now+TTL. It returns the token and its expiry instant.
func (c *TokenCodec) Issue(subject, role string, now time.Time) (string, time.Time, error) {
	expiry := now.Add(c.ttl)

	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiry, nil
}

// Parse validates a token against the current clock.
func (c *TokenCodec) Parse(raw string) (*Claims, error) {
	return c.ParseAt(raw, time.Now())
}

// ParseAt validates a token as of the given instant. It fails with
// ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired; a token
// whose signature does not verify never yields claims, whatever its
// payload says.
func (c *TokenCodec) ParseAt(raw string, now time.Time) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)

	parsed, err := parser.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.Subject == "" || claims.Role == "" {
		return nil, ErrTokenMalformed
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, ErrTokenMalformed
	}

	// jwt treats now == exp as still valid; a token is invalid at or
	// after its expiry instant.
	if !now.Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	return &Claims{
		Subject:   claims.Subject,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
