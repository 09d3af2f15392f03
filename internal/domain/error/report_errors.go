package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportMonth is returned when a month outside 1..12 is requested.
	ErrInvalidReportMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidReportYear is returned when the year is not a usable calendar year.
	ErrInvalidReportYear = errors.New("invalid year")

	// ErrMalformedRecordDate is returned when a record carries a missing or unparsable date.
	ErrMalformedRecordDate = errors.New("malformed date, expected YYYY-MM-DD")

	// ErrUnknownRecordType is returned when a transaction type is neither income nor expense.
	ErrUnknownRecordType = errors.New("unknown transaction type")

	// ErrInsightsUnavailable is returned when no insight provider is configured or it failed.
	ErrInsightsUnavailable = errors.New("insights are not available")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportMonth ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportYear  ReportErrorCode = "RPT-010002"

	// Data format errors (02XXXX)
	ErrCodeMalformedRecordDate ReportErrorCode = "RPT-020001"
	ErrCodeUnknownRecordType   ReportErrorCode = "RPT-020002"

	// Collaborator errors (03XXXX)
	ErrCodeInsightsUnavailable ReportErrorCode = "RPT-030001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

func (e *ReportError) Error() string { return withCause(e.Message, e.Err) }

func (e *ReportError) Unwrap() error { return e.Err }

// NewReportError creates a ReportError wrapping err.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{Code: code, Message: message, Err: err}
}
