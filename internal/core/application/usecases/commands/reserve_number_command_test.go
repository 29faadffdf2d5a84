package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReserveNumberCommand(t *testing.T) {
	session := testSession(t, kernel.NewUUID(), kernel.NewUUID(), auth.RoleEmployee)
	reservationID := kernel.NewUUID()

	cmd, err := commands.NewReserveNumberCommand(
		reservationID, session, order.TypeInternal, "26", 1)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.ReservationID().IsEqual(reservationID))
	assert.Equal(t, order.TypeInternal, cmd.OrderType())
	assert.Equal(t, "26", cmd.YearPrefix())
	assert.Equal(t, 1, cmd.SequenceNumber())
}

func TestNewReserveNumberCommand_MalformedNumber(t *testing.T) {
	session := testSession(t, kernel.NewUUID(), kernel.NewUUID(), auth.RoleEmployee)

	tests := []struct {
		name       string
		yearPrefix string
		sequence   int
		wantErr    error
	}{
		{"year prefix too long", "2026", 1, errs.ErrValueIsInvalid},
		{"year prefix not digits", "ab", 1, errs.ErrValueIsInvalid},
		{"sequence above range", "26", 1000, errs.ErrValueIsOutOfRange},
		{"negative sequence", "26", -1, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewReserveNumberCommand(
				kernel.NewUUID(), session, order.TypeInternal, tt.yearPrefix, tt.sequence)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
