package queries

import (
	"context"

	"procurement/internal/core/domain/model/reservation"

	"gorm.io/gorm"
)

// GetNextNumberQueryHandler computes the advisory next sequence value from
// the active reservations. Two users asking at the same moment may both see
// the same suggestion; the reservation insert decides who gets it.
type GetNextNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetNextNumberQueryHandler creates a handler for next-number queries.
func NewGetNextNumberQueryHandler(db *gorm.DB) GetNextNumberQueryHandler {
	return GetNextNumberQueryHandler{db: db}
}

// Handle returns max(active sequence)+1 for the scoped number space.
// Released slots below the maximum are not suggested; callers may still
// reserve them explicitly.
func (h GetNextNumberQueryHandler) Handle(
	ctx context.Context,
	query GetNextNumberQuery,
) (GetNextNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNextNumberQueryResponse{}, err
	}

	var maxSequence int
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(sequence_number), -1)
		FROM number_reservations
		WHERE company_id = ?
		  AND order_type = ?
		  AND year_prefix = ?
		  AND released_at IS NULL
	`, query.Session().CompanyID().Bytes(), query.OrderType().String(), query.YearPrefix()).
		Scan(&maxSequence).Error
	if err != nil {
		return GetNextNumberQueryResponse{}, err
	}

	next := maxSequence + 1
	fullNumber, err := reservation.FormatFullNumber(query.YearPrefix(), next)
	if err != nil {
		return GetNextNumberQueryResponse{}, err
	}

	return GetNextNumberQueryResponse{
		YearPrefix:     query.YearPrefix(),
		SequenceNumber: next,
		FullNumber:     fullNumber,
	}, nil
}
