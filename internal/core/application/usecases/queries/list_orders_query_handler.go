package queries

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists a company's orders with raw SQL. Orders from
// other companies never appear; the company scope comes from the session,
// not from request parameters.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the list query, newest orders first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_number,
			status,
			order_type,
			creator_id,
			created_at
		FROM purchase_orders
		WHERE company_id = ?
	`
	args := []any{query.Session().CompanyID().Bytes()}

	if status := query.Status(); status != nil {
		sql += " AND status = ?"
		args = append(args, status.String())
	}
	if orderType := query.OrderType(); orderType != nil {
		sql += " AND order_type = ?"
		args = append(args, orderType.String())
	}
	sql += " ORDER BY created_at DESC, id DESC"

	orders := make([]ListOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListOrdersQueryResponse
		var id, creatorID uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&row.OrderNumber,
			&row.Status,
			&row.OrderType,
			&creatorID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		creator, idErr := kernel.UUIDFromBytes(creatorID[:])
		if idErr != nil {
			return nil, idErr
		}

		row.ID = orderID
		row.CreatorID = creator
		row.CreatedAt = createdAt
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
