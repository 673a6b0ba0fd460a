package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"payment-ledger/internal/core/domain"

	"github.com/rs/zerolog"
)

// Reader streams transaction records out of a CSV document. Expected
// columns: type, client, tx, amount; amount is optional for the dispute
// lifecycle rows. Fields are whitespace-trimmed and the column count is
// flexible. Rows that fail to parse are counted, logged and skipped;
// they never reach the ledger.
type Reader struct {
	csv       *csv.Reader
	log       zerolog.Logger
	line      int
	malformed int
}

// NewReader wraps r. The first row is treated as a header when its first
// field is the literal "type".
func NewReader(r io.Reader, log zerolog.Logger) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{
		csv: cr,
		log: log,
	}
}

// Next returns the next well-formed record, or io.EOF at end of input.
// Only stream-level failures (I/O errors) are returned as errors.
func (r *Reader) Next() (*domain.Record, error) {
	for {
		row, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			r.discard(parseErr.Line, err)
			continue
		}
		if err != nil {
			return nil, err
		}

		r.line++
		if r.line == 1 && isHeader(row) {
			continue
		}

		rec, err := parseRow(row)
		if err != nil {
			r.discard(r.line, err)
			continue
		}
		return rec, nil
	}
}

// Malformed returns how many rows were discarded so far.
func (r *Reader) Malformed() int { return r.malformed }

func (r *Reader) discard(line int, err error) {
	r.malformed++
	r.log.Warn().Err(err).Int("line", line).Msg("discarding malformed row")
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "type")
}

func parseRow(row []string) (*domain.Record, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(row))
	}

	op, err := domain.ParseOperationType(strings.TrimSpace(row[0]))
	if err != nil {
		return nil, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("client id: %w", err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("tx id: %w", err)
	}

	rec := &domain.Record{
		Type:   op,
		Client: uint16(client),
		Tx:     uint32(tx),
	}

	if len(row) > 3 {
		if raw := strings.TrimSpace(row[3]); raw != "" {
			amount, err := domain.AmountFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("amount: %w", err)
			}
			rec.Amount = &amount
		}
	}
	return rec, nil
}
