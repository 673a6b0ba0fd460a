package domain

import "payment-ledger/pkg/apperror"

// OperationType represents the kind of incoming record.
type OperationType string

const (
	OperationDeposit    OperationType = "deposit"
	OperationWithdrawal OperationType = "withdrawal"
	OperationDispute    OperationType = "dispute"
	OperationResolve    OperationType = "resolve"
	OperationChargeback OperationType = "chargeback"
)

// ParseOperationType maps an input token to an OperationType.
func ParseOperationType(s string) (OperationType, error) {
	switch OperationType(s) {
	case OperationDeposit, OperationWithdrawal, OperationDispute,
		OperationResolve, OperationChargeback:
		return OperationType(s), nil
	default:
		return "", apperror.ErrUnknownOperation(s)
	}
}

// Record is one row of the input stream. Amount is nil for the dispute
// lifecycle operations, which reference a prior transaction instead of
// carrying money themselves.
type Record struct {
	Type   OperationType
	Client uint16
	Tx     uint32
	Amount *Amount
}
