package error

import "errors"

var (
	ErrTransactionNotFound              = errors.New("transaction not found")
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionDate   = errors.New("invalid transaction date")
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")
	ErrDescriptionTooLong       = errors.New("description too long")
	ErrCategoryTooLong          = errors.New("category too long")
	// ErrInvalidTransactionPeriod covers a month outside 1..12 and a month
	// filter given without its year.
	ErrInvalidTransactionPeriod = errors.New("invalid month or year")
)

// TransactionErrorCode is TXN-01YYYY. Gaps in the numbering are codes
// retired with features this service no longer has.
type TransactionErrorCode string

const (
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010008"
	ErrCodeCategoryTooLong          TransactionErrorCode = "TXN-010009"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010010"
	ErrCodeInvalidTransactionPeriod TransactionErrorCode = "TXN-010013"
)

// TransactionError is a ledger entry validation, lookup or ownership failure.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

func (e *TransactionError) Error() string { return withCause(e.Message, e.Err) }

func (e *TransactionError) Unwrap() error { return e.Err }

// NewTransactionError creates a TransactionError wrapping err.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{Code: code, Message: message, Err: err}
}
