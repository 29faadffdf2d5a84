package inmemory_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"procurement/internal/adapters/out/inmemory"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReservation(t *testing.T, repo *inmemory.ReservationRepository, companyID kernel.UUID, seq int) *reservation.NumberReservation {
	t.Helper()

	claim, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeExternal, "26", seq, kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, repo.Insert(t.Context(), claim))
	return claim
}

func TestUpdateRejectsReleaseOverCommittedConfirm(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewStore()
	repo := inmemory.NewReservationRepository(store)

	companyID := kernel.NewUUID()
	claim := seedReservation(t, repo, companyID, 52)

	confirming, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)
	releasing, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	require.NoError(t, confirming.Confirm(orderID, time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, confirming))

	// The stale snapshot passes its own domain guard; the store must still
	// refuse to overwrite the committed confirm.
	require.NoError(t, releasing.Release(time.Now().UTC()))
	err = repo.Update(ctx, releasing)
	require.ErrorIs(t, err, reservation.ErrReservationAlreadyConfirmed)

	stored, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsConfirmed())
	assert.False(t, stored.IsReleased())
	require.NotNil(t, stored.PurchaseOrderID())
	assert.True(t, stored.PurchaseOrderID().IsEqual(orderID))

	second, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeExternal, "26", 52, kernel.NewUUID())
	require.NoError(t, err)
	require.ErrorIs(t, repo.Insert(ctx, second), ports.ErrDuplicateReservation)
}

func TestUpdateRejectsConfirmOverCommittedRelease(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewStore()
	repo := inmemory.NewReservationRepository(store)

	claim := seedReservation(t, repo, kernel.NewUUID(), 53)

	confirming, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)
	releasing, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)

	require.NoError(t, releasing.Release(time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, releasing))

	require.NoError(t, confirming.Confirm(kernel.NewUUID(), time.Now().UTC()))
	err = repo.Update(ctx, confirming)
	require.ErrorIs(t, err, reservation.ErrReservationReleased)

	stored, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsReleased())
	assert.False(t, stored.IsConfirmed())
}

func TestConcurrentConfirmAndReleaseOneWinner(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewStore()
	repo := inmemory.NewReservationRepository(store)

	claim := seedReservation(t, repo, kernel.NewUUID(), 54)

	confirming, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)
	releasing, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)

	require.NoError(t, confirming.Confirm(kernel.NewUUID(), time.Now().UTC()))
	require.NoError(t, releasing.Release(time.Now().UTC()))

	var wg sync.WaitGroup
	results := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0] = repo.Update(ctx, confirming)
	}()
	go func() {
		defer wg.Done()
		results[1] = repo.Update(ctx, releasing)
	}()
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		require.True(t,
			errors.Is(err, reservation.ErrReservationAlreadyConfirmed) ||
				errors.Is(err, reservation.ErrReservationReleased),
			"loser got unexpected error: %v", err)
	}
	assert.Equal(t, 1, winners)

	stored, err := repo.Get(ctx, claim.ID())
	require.NoError(t, err)
	assert.NotEqual(t, stored.IsConfirmed(), stored.IsReleased())
}
