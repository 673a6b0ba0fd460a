package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("LED_002", "not enough funds available for account 7"),
			expected: "[LED_002] not enough funds available for account 7",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "cannot read input source", fmt.Errorf("permission denied")),
			expected: "[SYS_001] cannot read input source: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := ErrInputSource(inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("LED_004", "test")
	assert.Nil(t, appErr.Unwrap())
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	// Two separately constructed instances with the same code must match,
	// regardless of the identifiers baked into the message.
	assert.True(t, errors.Is(ErrAccountLocked(1), ErrAccountLocked(99)))
	assert.True(t, errors.Is(ErrTransactionIDAlreadyUsed(1, "deposit"), ErrTransactionIDAlreadyUsed(2, "withdrawal")))
	assert.False(t, errors.Is(ErrInsufficientFunds(1), ErrFundsOverflow(1)))
}

func TestLedgerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{"AccountLocked", ErrAccountLocked(1), "LED_001"},
		{"InsufficientFunds", ErrInsufficientFunds(2), "LED_002"},
		{"FundsOverflow", ErrFundsOverflow(3), "LED_003"},
		{"MissingAmount", ErrMissingAmount(), "LED_004"},
		{"NegativeAmount", ErrNegativeAmount(), "LED_005"},
		{"TransactionIDAlreadyUsed", ErrTransactionIDAlreadyUsed(42, "deposit"), "LED_006"},
		{"ResolveOnNonDispute", ErrResolveOnNonDispute(), "LED_007"},
		{"UnknownOperation", ErrUnknownOperation("transfer"), "LED_008"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestErrorMessagesCarryIdentifiers(t *testing.T) {
	assert.Contains(t, ErrAccountLocked(17).Message, "17")
	assert.Contains(t, ErrTransactionIDAlreadyUsed(9000, "deposit").Message, "9000")
	assert.Contains(t, ErrTransactionIDAlreadyUsed(9000, "deposit").Message, "deposit")
	assert.Contains(t, ErrUnknownOperation("transfer").Message, "transfer")
}
