package ports

import "payment-ledger/internal/core/domain"

// RecordSource streams parsed input records.
type RecordSource interface {
	// Next returns the next well-formed record, or io.EOF once the
	// stream is exhausted. Malformed rows are skipped internally and
	// never surface here.
	Next() (*domain.Record, error)
	// Malformed returns how many rows were discarded during parsing
	// so far.
	Malformed() int
}

// SnapshotWriter renders the final per-client balance snapshot.
type SnapshotWriter interface {
	WriteSnapshot(accounts []domain.AccountSnapshot) error
}

// Ledger applies records against the account set.
type Ledger interface {
	// Apply interprets one record. Business rejections come back as
	// *apperror.AppError; they are terminal for the record only.
	Apply(rec *domain.Record) error
	// Snapshot returns the current account states sorted by client id.
	Snapshot() []domain.AccountSnapshot
}
