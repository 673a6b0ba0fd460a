package apperror

import "fmt"

// Error codes. Stable identifiers for programmatic matching; messages are
// for operators only.
const (
	CodeAccountLocked       = "LED_001"
	CodeInsufficientFunds   = "LED_002"
	CodeFundsOverflow       = "LED_003"
	CodeMissingAmount       = "LED_004"
	CodeNegativeAmount      = "LED_005"
	CodeTransactionIDUsed   = "LED_006"
	CodeResolveOnNonDispute = "LED_007"
	CodeUnknownOperation    = "LED_008"

	CodeInputSource = "SYS_001"
)

// AppError is a structured error with a stable code.
type AppError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Wrapped internal error (not shown to the operator)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so errors.Is works against any instance
// produced by the same constructor.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ---- Account Business Rules (LED_001..003) ----

func ErrAccountLocked(client uint16) *AppError {
	return New(CodeAccountLocked, fmt.Sprintf("account %d is locked", client))
}

func ErrInsufficientFunds(client uint16) *AppError {
	return New(CodeInsufficientFunds, fmt.Sprintf("not enough funds available for account %d", client))
}

func ErrFundsOverflow(client uint16) *AppError {
	return New(CodeFundsOverflow, fmt.Sprintf("balance overflow in account %d", client))
}

// ---- Record Validation (LED_004..008) ----

func ErrMissingAmount() *AppError {
	return New(CodeMissingAmount, "amount is required for this operation")
}

func ErrNegativeAmount() *AppError {
	return New(CodeNegativeAmount, "amount must not be negative")
}

func ErrTransactionIDAlreadyUsed(tx uint32, operation string) *AppError {
	return New(CodeTransactionIDUsed, fmt.Sprintf("transaction id %d already used (incoming %s)", tx, operation))
}

func ErrResolveOnNonDispute() *AppError {
	return New(CodeResolveOnNonDispute, "resolve references a transaction that is not under dispute")
}

func ErrUnknownOperation(operation string) *AppError {
	return New(CodeUnknownOperation, fmt.Sprintf("unknown operation %q", operation))
}

// ---- System & Infrastructure (SYS) ----

func ErrInputSource(err error) *AppError {
	return Wrap(CodeInputSource, "cannot read input source", err)
}
