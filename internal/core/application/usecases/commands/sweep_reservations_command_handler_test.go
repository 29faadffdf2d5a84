package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepReservationsCommandHandler_Handle_ReleasesStale(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()

	first, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeExternal, "26", 11, kernel.NewUUID())
	require.NoError(t, err)
	second, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeInternal, "26", 12, kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewSweepReservationsCommand(30 * time.Minute)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	uow := new(MockReservationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("ListStale", ctx, mock.AnythingOfType("time.Time")).
			Return([]*reservation.NumberReservation{first, second}, nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Update", ctx, first).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReservationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepReservationsCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, released)
	assert.True(t, first.IsReleased())
	assert.True(t, second.IsReleased())

	reservationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSweepReservationsCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSweepReservationsCommand(30 * time.Minute)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	uow := new(MockReservationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("ListStale", ctx, mock.AnythingOfType("time.Time")).
			Return([]*reservation.NumberReservation{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReservationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepReservationsCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, released)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSweepReservationsCommandHandler_Handle_CutoffHonorsTTL(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSweepReservationsCommand(2 * time.Hour)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	uow := new(MockReservationUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ReservationRepository").Return(reservationRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	reservationRepo.On("ListStale", ctx, mock.MatchedBy(func(before time.Time) bool {
		expected := time.Now().UTC().Add(-2 * time.Hour)
		return before.Sub(expected).Abs() < time.Minute
	})).Return(nil, nil).Once()

	factory := new(MockReservationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepReservationsCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, released)
	reservationRepo.AssertExpectations(t)
}

func TestNewSweepReservationsCommand_RejectsZeroTTL(t *testing.T) {
	_, err := commands.NewSweepReservationsCommand(0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSweepReservationsCommandHandler_Handle_SkipsClaimsMovedSinceListing(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()

	// Listed as stale, then confirmed by its holder before the sweep's write.
	confirmedMeanwhile, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeExternal, "26", 11, kernel.NewUUID())
	require.NoError(t, err)
	abandoned, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeExternal, "26", 12, kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewSweepReservationsCommand(30 * time.Minute)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	uow := new(MockReservationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("ListStale", ctx, mock.AnythingOfType("time.Time")).
			Return([]*reservation.NumberReservation{confirmedMeanwhile, abandoned}, nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Update", ctx, confirmedMeanwhile).
			Return(reservation.ErrReservationAlreadyConfirmed).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Update", ctx, abandoned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReservationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepReservationsCommandHandler(factory)
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, released)
	reservationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
