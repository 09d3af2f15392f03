package error

import "errors"

var (
	ErrGoalNotFound           = errors.New("goal not found")
	ErrGoalAlreadyExists      = errors.New("goal already exists for this period")
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	ErrInvalidTargetAmount = errors.New("invalid target amount")
	ErrInvalidGoalMonth    = errors.New("target month must be between 1 and 12")
	ErrInvalidGoalYear     = errors.New("invalid target year")
)

// GoalErrorCode is GOL-01YYYY.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeGoalAlreadyExists      GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalMonth       GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalYear        GoalErrorCode = "GOL-010005"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010008"
)

// GoalError is a savings goal validation, lookup or ownership failure.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

func (e *GoalError) Error() string { return withCause(e.Message, e.Err) }

func (e *GoalError) Unwrap() error { return e.Err }

// NewGoalError creates a GoalError wrapping err.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{Code: code, Message: message, Err: err}
}

// withCause appends the wrapped error's text, when there is one.
func withCause(message string, err error) string {
	if err == nil {
		return message
	}
	return message + ": " + err.Error()
}
