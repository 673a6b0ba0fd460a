package service

import (
	"sort"

	"payment-ledger/internal/core/domain"
	"payment-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerService implements ports.Ledger: it owns the accounts-by-client
// and transactions-by-tx maps and drives the dispute state machine.
// Transaction ids are global, not scoped per client. Strictly sequential:
// each record is fully applied or rejected before the next is considered.
type LedgerService struct {
	accounts     map[uint16]*domain.Account
	transactions map[uint32]*domain.TransactionRecord
	log          zerolog.Logger
}

// NewLedgerService creates an empty ledger.
func NewLedgerService(log zerolog.Logger) *LedgerService {
	return &LedgerService{
		accounts:     make(map[uint16]*domain.Account),
		transactions: make(map[uint32]*domain.TransactionRecord),
		log:          log,
	}
}

// Apply interprets one record against the ledger. Only deposits and
// withdrawals create registry entries; dispute, resolve and chargeback
// reference entries created earlier. Errors are terminal for the single
// record only and leave the rest of the run unaffected.
func (s *LedgerService) Apply(rec *domain.Record) error {
	switch rec.Type {
	case domain.OperationDeposit, domain.OperationWithdrawal:
		return s.applyTransfer(rec)
	case domain.OperationDispute:
		return s.applyDispute(rec)
	case domain.OperationResolve:
		return s.applyResolve(rec)
	case domain.OperationChargeback:
		return s.applyChargeback(rec)
	default:
		return apperror.ErrUnknownOperation(string(rec.Type))
	}
}

// account returns the client's account, creating it on first reference.
func (s *LedgerService) account(clientID uint16) *domain.Account {
	acct, ok := s.accounts[clientID]
	if !ok {
		acct = domain.NewAccount(clientID)
		s.accounts[clientID] = acct
	}
	return acct
}

// applyTransfer handles deposits and withdrawals: validates the record,
// registers the transaction id, and moves the money. The id is consumed
// as soon as the record validates, even if the balance operation then
// fails against the account.
func (s *LedgerService) applyTransfer(rec *domain.Record) error {
	if _, exists := s.transactions[rec.Tx]; exists {
		return apperror.ErrTransactionIDAlreadyUsed(rec.Tx, string(rec.Type))
	}
	if rec.Amount == nil {
		return apperror.ErrMissingAmount()
	}
	if rec.Amount.IsNegative() {
		return apperror.ErrNegativeAmount()
	}

	s.transactions[rec.Tx] = domain.NewTransactionRecord(rec.Type, *rec.Amount)

	acct := s.account(rec.Client)
	if rec.Type == domain.OperationDeposit {
		return acct.Deposit(*rec.Amount)
	}
	return acct.Withdraw(*rec.Amount)
}

// applyDispute opens a dispute on a tracked transaction. Disputes naming
// unknown or already-disputed transactions are expected noise from
// late/duplicate notices and are dropped without error. Only deposits
// move money here: a withdrawal already left available, so there is
// nothing further to freeze until a chargeback restores it.
func (s *LedgerService) applyDispute(rec *domain.Record) error {
	tr, ok := s.transactions[rec.Tx]
	if !ok {
		s.log.Debug().Uint32("tx", rec.Tx).Msg("dispute on unknown transaction, dropped")
		return nil
	}
	if !tr.OpenDispute() {
		s.log.Debug().Uint32("tx", rec.Tx).Msg("transaction disputed before, dropped")
		return nil
	}
	if tr.OperationType == domain.OperationDeposit {
		return s.account(rec.Client).Dispute(tr.Amount)
	}
	return nil
}

// applyResolve settles an open dispute in the client's favor. Unlike
// dispute and chargeback, a resolve naming a tracked but undisputed
// transaction is surfaced as an error: that is almost certainly an
// operator mistake rather than duplicate notice traffic.
func (s *LedgerService) applyResolve(rec *domain.Record) error {
	tr, ok := s.transactions[rec.Tx]
	if !ok {
		s.log.Debug().Uint32("tx", rec.Tx).Msg("resolve on unknown transaction, dropped")
		return nil
	}
	if !tr.UnderDispute {
		return apperror.ErrResolveOnNonDispute()
	}
	tr.Settle()
	return s.account(rec.Client).Resolve(tr.Amount)
}

// applyChargeback settles an open dispute against the client. A deposit
// chargeback removes the held funds and locks the account; a withdrawal
// chargeback puts the amount back into available and leaves the account
// usable. Unknown or undisputed references are dropped without error.
func (s *LedgerService) applyChargeback(rec *domain.Record) error {
	tr, ok := s.transactions[rec.Tx]
	if !ok || !tr.UnderDispute {
		s.log.Debug().Uint32("tx", rec.Tx).Msg("chargeback without open dispute, dropped")
		return nil
	}
	tr.Settle()
	if tr.OperationType == domain.OperationDeposit {
		return s.account(rec.Client).Chargeback(tr.Amount)
	}
	return s.account(rec.Client).ChargebackWithdrawal(tr.Amount)
}

// Snapshot returns the account states sorted by client id. Map iteration
// order is unspecified, and stable output matters for diffing runs.
func (s *LedgerService) Snapshot() []domain.AccountSnapshot {
	out := make([]domain.AccountSnapshot, 0, len(s.accounts))
	for _, acct := range s.accounts {
		out = append(out, acct.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Client < out[j].Client })
	return out
}
