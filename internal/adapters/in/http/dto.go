package http

import (
	"time"
)

// Request and response bodies for the REST surface. Kept as plain structs
// with JSON tags; the domain types never cross the HTTP boundary.

type ItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	UnitPrice string `json:"unitPrice"`
}

type CreateOrderRequest struct {
	OrderType     string        `json:"orderType"`
	SiteManagerID string        `json:"siteManagerId"`
	OrgUnitID     *string       `json:"orgUnitId,omitempty"`
	ProjectID     *string       `json:"projectId,omitempty"`
	Items         []ItemRequest `json:"items"`
}

type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type ApplyActionRequest struct {
	Action             string  `json:"action"`
	ExpectedFromStatus string  `json:"expectedFromStatus"`
	SupplierID         *string `json:"supplierId,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

type ApplyActionResponse struct {
	OrderID     string `json:"orderId"`
	FromStatus  string `json:"fromStatus"`
	FinalStatus string `json:"finalStatus"`
}

type OrderSummaryResponse struct {
	OrderID     string    `json:"orderId"`
	OrderNumber *string   `json:"orderNumber,omitempty"`
	Status      string    `json:"status"`
	OrderType   string    `json:"orderType"`
	CreatorID   string    `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AvailableActionsResponse struct {
	OrderID string   `json:"orderId"`
	Status  string   `json:"status"`
	Actions []string `json:"actions"`
}

type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	Action     string    `json:"action"`
	ChangedBy  string    `json:"changedBy"`
	ChangedAt  time.Time `json:"changedAt"`
	Notes      *string   `json:"notes,omitempty"`
}

type NextNumberResponse struct {
	YearPrefix     string `json:"yearPrefix"`
	SequenceNumber int    `json:"sequenceNumber"`
	FullNumber     string `json:"fullNumber"`
}

type ReserveNumberRequest struct {
	OrderType      string `json:"orderType"`
	YearPrefix     string `json:"yearPrefix"`
	SequenceNumber int    `json:"sequenceNumber"`
}

type ReserveNumberResponse struct {
	ReservationID string `json:"reservationId"`
	FullNumber    string `json:"fullNumber"`
	Reused        bool   `json:"reused"`
}

type ConfirmReservationRequest struct {
	OrderID string `json:"orderId"`
}

type ConfirmReservationResponse struct {
	FullNumber string `json:"fullNumber"`
}

// ErrorResponse is the uniform error body. Conflict answers carry a Reason
// ("stale_state", "permanently_taken", "temporarily_held",
// "already_confirmed", "released") and, for a number already attached to an
// order, the owning order's ID.
type ErrorResponse struct {
	Code               int    `json:"code"`
	Message            string `json:"message"`
	Reason             string `json:"reason,omitempty"`
	ConflictingOrderID string `json:"conflictingOrderId,omitempty"`
}
