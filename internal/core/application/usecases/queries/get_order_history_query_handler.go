package queries

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's transition log from the
// database. The log is append-only, so the result is a faithful record of
// every committed transition.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the history query. The order must exist and belong to the
// session's company.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var companyID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT company_id FROM purchase_orders WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&companyID).Error
	if err != nil {
		return nil, err
	}
	if companyID == uuid.Nil {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if companyID != query.Session().CompanyID().Bytes() {
		return nil, errs.NewPermissionDeniedError(
			query.Session().UserID().String(), "get_order_history")
	}

	direction := "DESC"
	if query.Chronological() {
		direction = "ASC"
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_status,
			to_status,
			action,
			changed_by,
			changed_at,
			notes
		FROM order_history
		WHERE purchase_order_id = ?
		ORDER BY changed_at `+direction+`, id `+direction+`
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryQueryResponse
		var id, changedBy uuid.UUID
		var changedAt time.Time

		err = rows.Scan(
			&id,
			&entry.FromStatus,
			&entry.ToStatus,
			&entry.Action,
			&changedBy,
			&changedAt,
			&entry.Notes,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		changedByID, idErr := kernel.UUIDFromBytes(changedBy[:])
		if idErr != nil {
			return nil, idErr
		}

		entry.ID = entryID
		entry.ChangedBy = changedByID
		entry.ChangedAt = changedAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
