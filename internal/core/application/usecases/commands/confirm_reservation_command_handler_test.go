package commands_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConfirmUoW struct{ mock.Mock }

func (m *MockConfirmUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfirmUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfirmUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfirmUoW) ReservationRepository() ports.ReservationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReservationRepository)
}

func (m *MockConfirmUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockConfirmUoWFactory struct{ mock.Mock }

func (m *MockConfirmUoWFactory) Create() commands.ConfirmUoW {
	args := m.Called()
	return args.Get(0).(commands.ConfirmUoW)
}

func TestConfirmReservationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	userID := kernel.NewUUID()
	session := testSession(t, userID, companyID, auth.RoleEmployee)

	po := testInternalOrder(t, companyID, userID, kernel.NewUUID())
	claim, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeInternal, "26", 7, userID)
	require.NoError(t, err)

	cmd, err := commands.NewConfirmReservationCommand(claim.ID(), po.ID(), session)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	orderRepo := new(MockWorkflowOrderRepo)
	uow := new(MockConfirmUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		reservationRepo.On("Update", ctx, claim).Return(nil).Once(),
		orderRepo.On("UpdateOrderNumber", ctx, po.ID(), "26/007").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfirmUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmReservationCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "26/007", result.FullNumber)
	assert.True(t, claim.IsConfirmed())
	require.NotNil(t, claim.PurchaseOrderID())
	assert.True(t, claim.PurchaseOrderID().IsEqual(po.ID()))
	require.NotNil(t, po.OrderNumber())
	assert.Equal(t, "26/007", *po.OrderNumber())

	reservationRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmReservationCommandHandler_Handle_NotHolderIsDenied(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	session := testSession(t, kernel.NewUUID(), companyID, auth.RoleEmployee)

	claim, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeInternal, "26", 7, kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewConfirmReservationCommand(claim.ID(), kernel.NewUUID(), session)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	uow := new(MockConfirmUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfirmUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmReservationCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.False(t, claim.IsConfirmed())
}

func TestConfirmReservationCommandHandler_Handle_AdminMayConfirmForHolder(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	holderID := kernel.NewUUID()
	session := testSession(t, kernel.NewUUID(), companyID, auth.RoleAdmin)

	po := testInternalOrder(t, companyID, holderID, kernel.NewUUID())
	claim, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeInternal, "26", 7, holderID)
	require.NoError(t, err)

	cmd, err := commands.NewConfirmReservationCommand(claim.ID(), po.ID(), session)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	orderRepo := new(MockWorkflowOrderRepo)
	uow := new(MockConfirmUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		reservationRepo.On("Update", ctx, claim).Return(nil).Once(),
		orderRepo.On("UpdateOrderNumber", ctx, po.ID(), "26/007").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfirmUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmReservationCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, claim.IsConfirmed())
}

func TestConfirmReservationCommandHandler_Handle_AlreadyConfirmed(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	userID := kernel.NewUUID()
	session := testSession(t, userID, companyID, auth.RoleEmployee)

	po := testInternalOrder(t, companyID, userID, kernel.NewUUID())
	claim, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeInternal, "26", 7, userID)
	require.NoError(t, err)
	require.NoError(t, claim.Confirm(kernel.NewUUID(), time.Now().UTC()))

	cmd, err := commands.NewConfirmReservationCommand(claim.ID(), po.ID(), session)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	orderRepo := new(MockWorkflowOrderRepo)
	uow := new(MockConfirmUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfirmUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmReservationCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, reservation.ErrReservationAlreadyConfirmed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmReservationCommandHandler_Handle_ReleasedReservation(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	userID := kernel.NewUUID()
	session := testSession(t, userID, companyID, auth.RoleEmployee)

	po := testInternalOrder(t, companyID, userID, kernel.NewUUID())
	claim, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeInternal, "26", 7, userID)
	require.NoError(t, err)
	require.NoError(t, claim.Release(time.Now().UTC()))

	cmd, err := commands.NewConfirmReservationCommand(claim.ID(), po.ID(), session)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	orderRepo := new(MockWorkflowOrderRepo)
	uow := new(MockConfirmUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfirmUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmReservationCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, reservation.ErrReservationReleased)
}

func TestConfirmReservationCommandHandler_Handle_OrderAlreadyNumbered(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	userID := kernel.NewUUID()
	session := testSession(t, userID, companyID, auth.RoleEmployee)

	po := testInternalOrder(t, companyID, userID, kernel.NewUUID())
	require.NoError(t, po.AssignNumber("26/001"))

	claim, err := reservation.NewNumberReservation(
		kernel.NewUUID(), companyID, order.TypeInternal, "26", 7, userID)
	require.NoError(t, err)

	cmd, err := commands.NewConfirmReservationCommand(claim.ID(), po.ID(), session)
	require.NoError(t, err)

	reservationRepo := new(MockReservationRepo)
	orderRepo := new(MockWorkflowOrderRepo)
	uow := new(MockConfirmUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		reservationRepo.On("Get", ctx, claim.ID()).Return(claim, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfirmUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmReservationCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderNumberAlreadyAssigned)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
