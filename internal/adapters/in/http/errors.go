package http

import (
	"errors"
	"net/http"

	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors to HTTP answers:
//
//	404 missing object
//	403 permission denied
//	409 lost optimistic-concurrency race or number conflict
//	422 invalid transition or invalid value
//	500 everything else
func writeError(ctx echo.Context, err error) error {
	var numberConflict *errs.NumberConflictError
	if errors.As(err, &numberConflict) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:               http.StatusConflict,
			Message:            numberConflict.Error(),
			Reason:             string(numberConflict.Reason),
			ConflictingOrderID: numberConflict.ConflictingOrderID,
		})
	}

	switch {
	case errors.Is(err, errs.ErrStaleState):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Reason:  "stale_state",
		})
	case errors.Is(err, reservation.ErrReservationAlreadyConfirmed):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Reason:  "already_confirmed",
		})
	case errors.Is(err, reservation.ErrReservationReleased):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Reason:  "released",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrPermissionDenied):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
