package domain

import "payment-ledger/pkg/apperror"

// Account holds one client's monetary state: funds usable for withdrawal,
// funds frozen pending dispute resolution, and the permanent lock flag.
// Every mutating operation either fully applies or fails without touching
// the balances; a successful call never leaves available or held negative.
type Account struct {
	clientID  uint16
	available Amount
	held      Amount
	locked    bool
}

// NewAccount creates an empty, unlocked account for the client.
func NewAccount(clientID uint16) *Account {
	return &Account{clientID: clientID}
}

func (a *Account) ClientID() uint16  { return a.clientID }
func (a *Account) Available() Amount { return a.available }
func (a *Account) Held() Amount      { return a.held }
func (a *Account) IsLocked() bool    { return a.locked }

// Total returns available+held. Derived at read time, never stored.
func (a *Account) Total() Amount {
	return a.available.Add(a.held)
}

// Deposit adds amount to the available balance.
func (a *Account) Deposit(amount Amount) error {
	if a.locked {
		return apperror.ErrAccountLocked(a.clientID)
	}
	sum, ok := a.available.CheckedAdd(amount)
	if !ok {
		return apperror.ErrFundsOverflow(a.clientID)
	}
	a.available = sum
	return nil
}

// Withdraw removes amount from the available balance. Business
// insufficiency and representation underflow are distinct failures.
func (a *Account) Withdraw(amount Amount) error {
	if a.locked {
		return apperror.ErrAccountLocked(a.clientID)
	}
	if a.available.LessThan(amount) {
		return apperror.ErrInsufficientFunds(a.clientID)
	}
	rem, ok := a.available.CheckedSub(amount)
	if !ok {
		return apperror.ErrFundsOverflow(a.clientID)
	}
	a.available = rem
	return nil
}

// Dispute freezes a previously deposited amount: moves it from available
// to held. Money already spent cannot be frozen. Validate-then-apply: both
// legs are computed before either balance changes.
func (a *Account) Dispute(amount Amount) error {
	if a.available.LessThan(amount) {
		return apperror.ErrInsufficientFunds(a.clientID)
	}
	avail, ok := a.available.CheckedSub(amount)
	if !ok {
		return apperror.ErrFundsOverflow(a.clientID)
	}
	held, ok := a.held.CheckedAdd(amount)
	if !ok {
		return apperror.ErrFundsOverflow(a.clientID)
	}
	a.available = avail
	a.held = held
	return nil
}

// Resolve releases a frozen amount back to available. Validate-then-apply.
func (a *Account) Resolve(amount Amount) error {
	avail, ok := a.available.CheckedAdd(amount)
	if !ok {
		return apperror.ErrFundsOverflow(a.clientID)
	}
	held, ok := a.held.CheckedSub(amount)
	if !ok {
		return apperror.ErrFundsOverflow(a.clientID)
	}
	a.available = avail
	a.held = held
	return nil
}

// Chargeback finalizes a disputed deposit: removes the frozen amount and
// locks the account for good. The lock only takes effect once the
// subtraction has succeeded.
func (a *Account) Chargeback(amount Amount) error {
	held, ok := a.held.CheckedSub(amount)
	if !ok {
		return apperror.ErrFundsOverflow(a.clientID)
	}
	a.held = held
	a.locked = true
	return nil
}

// ChargebackWithdrawal reverses a disputed withdrawal: the amount returns
// to available. Withdrawal reversals are operational corrections, not
// fraud signals, so the account is not locked.
func (a *Account) ChargebackWithdrawal(amount Amount) error {
	avail, ok := a.available.CheckedAdd(amount)
	if !ok {
		return apperror.ErrFundsOverflow(a.clientID)
	}
	a.available = avail
	return nil
}

// Snapshot captures the account state for rendering.
func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		Client:    a.clientID,
		Available: a.available,
		Held:      a.held,
		Total:     a.Total(),
		Locked:    a.locked,
	}
}

// AccountSnapshot is the read-only view of an account at the end of a run.
type AccountSnapshot struct {
	Client    uint16
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}
