// Package http exposes the workflow and numbering operations over REST.
// Handlers translate JSON payloads into commands and queries; all rules live
// in the application and domain layers.
package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Identity headers set by the gateway in front of this service.
const (
	headerUserID    = "X-User-Id"
	headerCompanyID = "X-Company-Id"
	headerRole      = "X-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	applyOrderActionHandler   commands.ApplyOrderActionCommandHandler
	reserveNumberHandler      commands.ReserveNumberCommandHandler
	confirmReservationHandler commands.ConfirmReservationCommandHandler
	releaseReservationHandler commands.ReleaseReservationCommandHandler

	listOrdersHandler       queries.ListOrdersQueryHandler
	availableActionsHandler queries.GetAvailableActionsQueryHandler
	orderHistoryHandler     queries.GetOrderHistoryQueryHandler
	nextNumberHandler       queries.GetNextNumberQueryHandler
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	applyOrderActionHandler commands.ApplyOrderActionCommandHandler,
	reserveNumberHandler commands.ReserveNumberCommandHandler,
	confirmReservationHandler commands.ConfirmReservationCommandHandler,
	releaseReservationHandler commands.ReleaseReservationCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	availableActionsHandler queries.GetAvailableActionsQueryHandler,
	orderHistoryHandler queries.GetOrderHistoryQueryHandler,
	nextNumberHandler queries.GetNextNumberQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		applyOrderActionHandler:   applyOrderActionHandler,
		reserveNumberHandler:      reserveNumberHandler,
		confirmReservationHandler: confirmReservationHandler,
		releaseReservationHandler: releaseReservationHandler,
		listOrdersHandler:         listOrdersHandler,
		availableActionsHandler:   availableActionsHandler,
		orderHistoryHandler:       orderHistoryHandler,
		nextNumberHandler:         nextNumberHandler,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.POST("/orders/:orderId/actions", s.ApplyOrderAction)
	api.GET("/orders/:orderId/actions", s.GetAvailableActions)
	api.GET("/orders/:orderId/history", s.GetOrderHistory)

	api.GET("/numbers/next", s.GetNextNumber)
	api.POST("/reservations", s.ReserveNumber)
	api.POST("/reservations/:reservationId/confirm", s.ConfirmReservation)
	api.POST("/reservations/:reservationId/release", s.ReleaseReservation)
}

// session reconstructs the acting identity from the gateway headers.
func (s *Server) session(ctx echo.Context) (auth.Session, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return auth.Session{}, err
	}
	companyID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerCompanyID))
	if err != nil {
		return auth.Session{}, err
	}
	role, err := auth.RoleFromString(ctx.Request().Header.Get(headerRole))
	if err != nil {
		return auth.Session{}, err
	}

	return auth.NewSession(userID, companyID, role)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderType, err := order.OrderTypeFromString(req.OrderType)
	if err != nil {
		return writeError(ctx, err)
	}
	siteManagerID, err := kernel.UUIDFromString(req.SiteManagerID)
	if err != nil {
		return badRequest(ctx, "invalid siteManagerId")
	}

	orgUnitID, err := optionalID(req.OrgUnitID)
	if err != nil {
		return badRequest(ctx, "invalid orgUnitId")
	}
	projectID, err := optionalID(req.ProjectID)
	if err != nil {
		return badRequest(ctx, "invalid projectId")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		unitPrice, priceErr := decimal.NewFromString(itemReq.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "invalid unitPrice: "+itemReq.UnitPrice)
		}
		item, itemErr := order.NewItem(itemReq.Name, itemReq.Quantity, itemReq.Unit, unitPrice)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, session, orderType, siteManagerID, orgUnitID, projectID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID: orderID.String(),
		Status:  order.StatusDraft.String(),
	})
}

// ApplyOrderAction handles POST /api/v1/orders/:orderId/actions.
func (s *Server) ApplyOrderAction(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid orderId")
	}

	var req ApplyActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	action, err := order.ActionFromString(req.Action)
	if err != nil {
		return writeError(ctx, err)
	}
	expected, err := order.StatusFromString(req.ExpectedFromStatus)
	if err != nil {
		return writeError(ctx, err)
	}
	supplierID, err := optionalID(req.SupplierID)
	if err != nil {
		return badRequest(ctx, "invalid supplierId")
	}

	cmd, err := commands.NewApplyOrderActionCommand(
		orderID, session, action, expected, supplierID, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.applyOrderActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ApplyActionResponse{
		OrderID:     orderID.String(),
		FromStatus:  result.FromStatus.String(),
		FinalStatus: result.FinalStatus.String(),
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		status = &parsed
	}

	var orderType *order.OrderType
	if raw := ctx.QueryParam("orderType"); raw != "" {
		parsed, parseErr := order.OrderTypeFromString(raw)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		orderType = &parsed
	}

	query, err := queries.NewListOrdersQuery(session, status, orderType)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, OrderSummaryResponse{
			OrderID:     row.ID.String(),
			OrderNumber: row.OrderNumber,
			Status:      row.Status,
			OrderType:   row.OrderType,
			CreatorID:   row.CreatorID.String(),
			CreatedAt:   row.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableActions handles GET /api/v1/orders/:orderId/actions.
func (s *Server) GetAvailableActions(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid orderId")
	}

	query, err := queries.NewGetAvailableActionsQuery(orderID, session)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.availableActionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AvailableActionsResponse{
		OrderID: orderID.String(),
		Status:  result.Status,
		Actions: result.Actions,
	})
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid orderId")
	}

	chronological := ctx.QueryParam("order") == "asc"

	query, err := queries.NewGetOrderHistoryQuery(orderID, session, chronological)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, HistoryEntryResponse{
			ID:         entry.ID.String(),
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			Action:     entry.Action,
			ChangedBy:  entry.ChangedBy.String(),
			ChangedAt:  entry.ChangedAt,
			Notes:      entry.Notes,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNextNumber handles GET /api/v1/numbers/next.
func (s *Server) GetNextNumber(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	orderType, err := order.OrderTypeFromString(ctx.QueryParam("orderType"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetNextNumberQuery(session, orderType, ctx.QueryParam("yearPrefix"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.nextNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NextNumberResponse{
		YearPrefix:     result.YearPrefix,
		SequenceNumber: result.SequenceNumber,
		FullNumber:     result.FullNumber,
	})
}

// ReserveNumber handles POST /api/v1/reservations.
func (s *Server) ReserveNumber(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	var req ReserveNumberRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderType, err := order.OrderTypeFromString(req.OrderType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReserveNumberCommand(
		kernel.NewUUID(), session, orderType, req.YearPrefix, req.SequenceNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.reserveNumberHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	status := http.StatusCreated
	if result.Reused {
		status = http.StatusOK
	}

	return ctx.JSON(status, ReserveNumberResponse{
		ReservationID: result.ReservationID.String(),
		FullNumber:    result.FullNumber,
		Reused:        result.Reused,
	})
}

// ConfirmReservation handles POST /api/v1/reservations/:reservationId/confirm.
func (s *Server) ConfirmReservation(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	reservationID, err := kernel.UUIDFromString(ctx.Param("reservationId"))
	if err != nil {
		return badRequest(ctx, "invalid reservationId")
	}

	var req ConfirmReservationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid orderId")
	}

	cmd, err := commands.NewConfirmReservationCommand(reservationID, orderID, session)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.confirmReservationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ConfirmReservationResponse{
		FullNumber: result.FullNumber,
	})
}

// ReleaseReservation handles POST /api/v1/reservations/:reservationId/release.
func (s *Server) ReleaseReservation(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return badRequest(ctx, "invalid identity headers: "+err.Error())
	}

	reservationID, err := kernel.UUIDFromString(ctx.Param("reservationId"))
	if err != nil {
		return badRequest(ctx, "invalid reservationId")
	}

	cmd, err := commands.NewReleaseReservationCommand(reservationID, session)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.releaseReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func optionalID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
