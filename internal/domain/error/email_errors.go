package error

import "errors"

var (
	// ErrEmailJobNotFound is returned when a queued email does not exist.
	ErrEmailJobNotFound = errors.New("email job not found")

	// ErrUnknownTemplate is returned for a job whose template type has no
	// renderer.
	ErrUnknownTemplate = errors.New("unknown email template")
)

// EmailErrorCode identifies an email failure. The delivery codes decide
// whether the worker retries a job.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"

	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	ErrCodeInvalidTemplate EmailErrorCode = "EMAIL-030001"
)

// EmailError is a queueing, rendering or delivery failure.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string { return withCause(e.Message, e.Err) }

func (e *EmailError) Unwrap() error { return e.Err }

// Permanent reports whether sending the same job again cannot succeed.
func (e *EmailError) Permanent() bool {
	return e.Code == ErrCodePermanentEmailFailure || e.Code == ErrCodeInvalidTemplate
}

// NewEmailError creates an EmailError wrapping err.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{Code: code, Message: message, Err: err}
}
