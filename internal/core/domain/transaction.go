package domain

// TransactionRecord is the registry entry kept for every accepted deposit
// or withdrawal. The amount is captured at creation and never changes;
// only the dispute flags mutate afterwards.
type TransactionRecord struct {
	OperationType OperationType
	Amount        Amount
	// UnderDispute is true while a dispute is open and not yet resolved
	// or charged back.
	UnderDispute bool
	// AlreadyDisputed latches once the first dispute is accepted. A
	// settled transaction can never re-enter the dispute cycle, so a
	// replayed dispute cannot double-freeze funds.
	AlreadyDisputed bool
}

// NewTransactionRecord creates a registry entry with the dispute flags
// cleared.
func NewTransactionRecord(op OperationType, amount Amount) *TransactionRecord {
	return &TransactionRecord{
		OperationType: op,
		Amount:        amount,
	}
}

// OpenDispute marks the entry disputed. Returns false when the entry has
// already been through the dispute cycle.
func (t *TransactionRecord) OpenDispute() bool {
	if t.AlreadyDisputed {
		return false
	}
	t.UnderDispute = true
	t.AlreadyDisputed = true
	return true
}

// Settle closes an open dispute. The AlreadyDisputed latch stays set.
func (t *TransactionRecord) Settle() {
	t.UnderDispute = false
}
