package reservation_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservation(t *testing.T) *reservation.NumberReservation {
	t.Helper()
	r, err := reservation.NewNumberReservation(
		kernel.NewUUID(), kernel.NewUUID(),
		order.TypeExternal, "25", 52,
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return r
}

func TestNewNumberReservation(t *testing.T) {
	t.Run("derives the full number", func(t *testing.T) {
		r := newTestReservation(t)

		require.NoError(t, r.Validate())
		assert.Equal(t, "25/052", r.FullNumber())
		assert.Equal(t, "25", r.YearPrefix())
		assert.Equal(t, 52, r.SequenceNumber())
		assert.False(t, r.IsConfirmed())
		assert.False(t, r.IsReleased())
		assert.Nil(t, r.PurchaseOrderID())
	})

	t.Run("rejects an invalid year prefix", func(t *testing.T) {
		_, err := reservation.NewNumberReservation(
			kernel.NewUUID(), kernel.NewUUID(),
			order.TypeExternal, "2025", 52,
			kernel.NewUUID(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an invalid order type", func(t *testing.T) {
		_, err := reservation.NewNumberReservation(
			kernel.NewUUID(), kernel.NewUUID(),
			order.TypeUnknown, "25", 52,
			kernel.NewUUID(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var r reservation.NumberReservation
		require.ErrorIs(t, r.Validate(), reservation.ErrReservationIsNotConstructed)
	})
}

func TestNumberReservationConfirm(t *testing.T) {
	orderID := kernel.NewUUID()
	at := time.Now().UTC()

	t.Run("valid exactly once", func(t *testing.T) {
		r := newTestReservation(t)

		require.NoError(t, r.Confirm(orderID, at))
		assert.True(t, r.IsConfirmed())
		require.NotNil(t, r.PurchaseOrderID())
		assert.True(t, r.PurchaseOrderID().IsEqual(orderID))

		err := r.Confirm(kernel.NewUUID(), at)
		require.ErrorIs(t, err, reservation.ErrReservationAlreadyConfirmed)
		// The original attachment is untouched.
		assert.True(t, r.PurchaseOrderID().IsEqual(orderID))
	})

	t.Run("fails on a released reservation", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Release(at))

		require.ErrorIs(t, r.Confirm(orderID, at), reservation.ErrReservationReleased)
	})
}

func TestNumberReservationRelease(t *testing.T) {
	at := time.Now().UTC()

	t.Run("frees the slot", func(t *testing.T) {
		r := newTestReservation(t)

		require.NoError(t, r.Release(at))
		assert.True(t, r.IsReleased())
	})

	t.Run("is idempotent on an already-released reservation", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Release(at))
		first := r.ReleasedAt()

		require.NoError(t, r.Release(at.Add(time.Hour)))
		assert.Equal(t, first, r.ReleasedAt())
	})

	t.Run("fails explicitly on a confirmed reservation", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Confirm(kernel.NewUUID(), at))

		require.ErrorIs(t, r.Release(at), reservation.ErrReservationAlreadyConfirmed)
		assert.False(t, r.IsReleased())
	})
}

func TestNumberReservationIsHeldBy(t *testing.T) {
	userID := kernel.NewUUID()
	r, err := reservation.NewNumberReservation(
		kernel.NewUUID(), kernel.NewUUID(),
		order.TypeInternal, "25", 7,
		userID,
	)
	require.NoError(t, err)

	assert.True(t, r.IsHeldBy(userID))
	assert.False(t, r.IsHeldBy(kernel.NewUUID()))

	require.NoError(t, r.Confirm(kernel.NewUUID(), time.Now().UTC()))
	assert.False(t, r.IsHeldBy(userID))
}
