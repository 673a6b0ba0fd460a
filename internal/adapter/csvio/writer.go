package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"payment-ledger/internal/core/domain"
)

// outputPrecision is the number of fractional digits in rendered amounts.
const outputPrecision = 4

// Writer renders account snapshots as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteSnapshot writes the header and one row per account. Monetary
// fields carry exactly four fractional digits; locked renders as the
// literal "true"/"false".
func (w *Writer) WriteSnapshot(accounts []domain.AccountSnapshot) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, acct := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acct.Client), 10),
			acct.Available.StringFixed(outputPrecision),
			acct.Held.StringFixed(outputPrecision),
			acct.Total.StringFixed(outputPrecision),
			strconv.FormatBool(acct.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}
