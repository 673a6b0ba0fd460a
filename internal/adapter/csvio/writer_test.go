package csvio

import (
	"bytes"
	"testing"

	"payment-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(t *testing.T, client uint16, available, held string, locked bool) domain.AccountSnapshot {
	t.Helper()
	a, err := domain.AmountFromString(available)
	require.NoError(t, err)
	h, err := domain.AmountFromString(held)
	require.NoError(t, err)
	return domain.AccountSnapshot{
		Client:    client,
		Available: a,
		Held:      h,
		Total:     a.Add(h),
		Locked:    locked,
	}
}

func TestWriter_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteSnapshot(nil))

	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}

func TestWriter_FourFractionalDigits(t *testing.T) {
	var buf bytes.Buffer
	snaps := []domain.AccountSnapshot{
		snap(t, 1, "100", "0", false),
		snap(t, 2, "1.5", "0.0001", true),
	}
	require.NoError(t, NewWriter(&buf).WriteSnapshot(snaps))

	expected := "client,available,held,total,locked\n" +
		"1,100.0000,0.0000,100.0000,false\n" +
		"2,1.5000,0.0001,1.5001,true\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_LockedRendersAsLiteralBool(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteSnapshot([]domain.AccountSnapshot{
		snap(t, 7, "0", "0", true),
	}))

	assert.Contains(t, buf.String(), "7,0.0000,0.0000,0.0000,true")
}
