package auth

import "errors"

// Authentication and authorization error taxonomy. Credential failures
// are deliberately collapsed into ErrInvalidCredentials so callers
// cannot distinguish an unknown account, a deactivated account, and a
// wrong password.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrDuplicateEmail     = errors.New("email is already in use")
	ErrWeakPassword       = errors.New("password does not meet minimum length")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenMalformed    = errors.New("token is malformed")
	ErrTokenBadSignature = errors.New("token signature is invalid")
	ErrTokenExpired      = errors.New("token has expired")
)
