package cmd

import (
	"log/slog"

	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/stock"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	workflow     services.Workflow
	authorizer   services.Authorizer
	stockChecker ports.StockChecker
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		workflow:     services.NewWorkflow(),
		authorizer:   services.NewAuthorizer(),
		stockChecker: stock.NewStaticChecker(config.StockAvailable),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyOrderActionCommandHandler() commands.ApplyOrderActionCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyOrderActionCommandHandler(f, c.workflow, c.authorizer, c.stockChecker)
}

func (c *CompositionRoot) CreateReserveNumberCommandHandler() commands.ReserveNumberCommandHandler {
	return commands.NewReserveNumberCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateConfirmReservationCommandHandler() commands.ConfirmReservationCommandHandler {
	var f commands.ConfirmUoWFactory = FuncConfirmUoWFactory(func() commands.ConfirmUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmReservationCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseReservationCommandHandler() commands.ReleaseReservationCommandHandler {
	return commands.NewReleaseReservationCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateSweepReservationsCommandHandler() commands.SweepReservationsCommandHandler {
	return commands.NewSweepReservationsCommandHandler(c.reservationUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableActionsQueryHandler() queries.GetAvailableActionsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetAvailableActionsQueryHandler(uow.OrderRepository(), c.authorizer)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextNumberQueryHandler() queries.GetNextNumberQueryHandler {
	return queries.NewGetNextNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSweepReservationsCommandHandler(),
		c.config.ReservationTTL,
		logger,
	)
}

func (c *CompositionRoot) reservationUoWFactory() commands.ReservationUoWFactory {
	return FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncConfirmUoWFactory func() commands.ConfirmUoW

func (f FuncConfirmUoWFactory) Create() commands.ConfirmUoW {
	return f()
}
