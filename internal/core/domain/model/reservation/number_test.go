package reservation_test

import (
	"fmt"
	"testing"

	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFullNumber(t *testing.T) {
	t.Run("zero pads the sequence", func(t *testing.T) {
		full, err := reservation.FormatFullNumber("25", 52)
		require.NoError(t, err)
		assert.Equal(t, "25/052", full)
	})

	t.Run("rejects a bad year prefix", func(t *testing.T) {
		for _, prefix := range []string{"2025", "5", "2a", ""} {
			_, err := reservation.FormatFullNumber(prefix, 1)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, prefix)
		}
	})

	t.Run("rejects an out-of-range sequence", func(t *testing.T) {
		_, err := reservation.FormatFullNumber("25", 1000)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = reservation.FormatFullNumber("25", -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestParseFullNumber(t *testing.T) {
	t.Run("is the exact inverse of FormatFullNumber", func(t *testing.T) {
		for year := 0; year <= 99; year += 9 {
			prefix := fmt.Sprintf("%02d", year)
			for _, seq := range []int{0, 1, 52, 99, 100, 500, 999} {
				full, err := reservation.FormatFullNumber(prefix, seq)
				require.NoError(t, err)

				gotPrefix, gotSeq, err := reservation.ParseFullNumber(full)
				require.NoError(t, err, full)
				assert.Equal(t, prefix, gotPrefix)
				assert.Equal(t, seq, gotSeq)
			}
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"2025-01", "25/1", "25-001", "25/0522", "a5/052", ""} {
			_, _, err := reservation.ParseFullNumber(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestValidateFormat(t *testing.T) {
	require.NoError(t, reservation.ValidateFormat("25/001"))
	require.NoError(t, reservation.ValidateFormat("00/000"))

	for _, s := range []string{"2025-01", "25/1", "25-001", "25/052 ", " 25/052"} {
		require.ErrorIs(t, reservation.ValidateFormat(s), errs.ErrValueIsInvalid, s)
	}
}
