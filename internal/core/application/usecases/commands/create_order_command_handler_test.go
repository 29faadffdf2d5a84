package commands_test

import (
	"context"
	"errors"
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	companyID := kernel.NewUUID()
	creatorID := kernel.NewUUID()
	session := testSession(t, creatorID, companyID, auth.RoleEmployee)

	orderID := kernel.NewUUID()
	orgUnitID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, session, order.TypeInternal, kernel.NewUUID(), &orgUnitID, nil, testItems(t))
	require.NoError(t, err)

	orderRepo := new(MockWorkflowOrderRepo)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.PurchaseOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := orderRepo.Calls[0].Arguments[1].(*order.PurchaseOrder)
	assert.True(t, added.ID().IsEqual(orderID))
	assert.Equal(t, order.StatusDraft, added.Status())
	assert.True(t, added.CreatorID().IsEqual(creatorID))
	assert.True(t, added.CompanyID().IsEqual(companyID))
	assert.Nil(t, added.OrderNumber())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_SupplierMayNotCreate(t *testing.T) {
	ctx := t.Context()

	session := testSession(t, kernel.NewUUID(), kernel.NewUUID(), auth.RoleSupplier)
	orgUnitID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), session, order.TypeInternal, kernel.NewUUID(), &orgUnitID, nil, testItems(t))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ExternalOrderNeedsProject(t *testing.T) {
	ctx := t.Context()

	session := testSession(t, kernel.NewUUID(), kernel.NewUUID(), auth.RoleEmployee)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), session, order.TypeExternal, kernel.NewUUID(), nil, nil, testItems(t))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	session := testSession(t, kernel.NewUUID(), kernel.NewUUID(), auth.RoleEmployee)
	orgUnitID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), session, order.TypeInternal, kernel.NewUUID(), &orgUnitID, nil, testItems(t))
	require.NoError(t, err)

	orderRepo := new(MockWorkflowOrderRepo)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.PurchaseOrder")).
			Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
