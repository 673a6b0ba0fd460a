package service

import (
	"errors"
	"fmt"
	"io"

	"payment-ledger/internal/core/ports"
	"payment-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReplayStats summarizes one replay run.
type ReplayStats struct {
	RunID     uuid.UUID
	Applied   int // records the ledger accepted
	Rejected  int // records the ledger rejected with a business error
	Malformed int // rows discarded before reaching the ledger
}

// ReplayService feeds an ordered record stream into the ledger, one
// record at a time. Business rejections are logged with the offending tx
// id and the run continues; only stream-level failures abort it.
type ReplayService struct {
	ledger ports.Ledger
	strict bool
	log    zerolog.Logger
}

// NewReplayService creates a ReplayService. With strict set, the first
// business rejection aborts the run instead of being logged and skipped.
func NewReplayService(ledger ports.Ledger, strict bool, log zerolog.Logger) *ReplayService {
	return &ReplayService{
		ledger: ledger,
		strict: strict,
		log:    log,
	}
}

// Run drains the source and applies every record. Returns the run stats,
// or an error when the source fails mid-stream (or, in strict mode, on
// the first rejected record).
func (s *ReplayService) Run(src ports.RecordSource) (*ReplayStats, error) {
	stats := &ReplayStats{RunID: uuid.New()}
	log := s.log.With().Str("run_id", stats.RunID.String()).Logger()

	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperror.ErrInputSource(err)
		}

		if err := s.ledger.Apply(rec); err != nil {
			if s.strict {
				return nil, fmt.Errorf("tx %d: %w", rec.Tx, err)
			}
			stats.Rejected++
			log.Warn().
				Err(err).
				Uint32("tx", rec.Tx).
				Uint16("client", rec.Client).
				Str("operation", string(rec.Type)).
				Msg("record rejected")
			continue
		}
		stats.Applied++
	}

	stats.Malformed = src.Malformed()
	log.Info().
		Int("applied", stats.Applied).
		Int("rejected", stats.Rejected).
		Int("malformed", stats.Malformed).
		Msg("replay finished")

	return stats, nil
}
