// Package error holds the typed errors returned by use cases. Each domain
// has its own error type carrying a stable code that handlers map to an
// HTTP status.
package error

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")

	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password does not meet minimum requirements")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth")

	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	// ErrTokenRevoked marks a well-formed refresh token that was already
	// rotated or logged out.
	ErrTokenRevoked = errors.New("token has been revoked")
)

// AuthErrorCode is AUTH-XXYYYY: XX is the flow (01 registration, 02 login,
// 03 tokens) and YYYY the failure within it.
type AuthErrorCode string

const (
	ErrCodeEmailExists        AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010004"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010005"
	ErrCodeInvalidDateOfBirth AuthErrorCode = "AUTH-010006"

	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"
	ErrCodeAccountInactive    AuthErrorCode = "AUTH-020004"

	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)

// AuthError is a registration, login or token failure.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

func (e *AuthError) Error() string { return withCause(e.Message, e.Err) }

func (e *AuthError) Unwrap() error { return e.Err }

// NewAuthError creates an AuthError wrapping err.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{Code: code, Message: message, Err: err}
}
