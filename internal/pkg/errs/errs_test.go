package errs_test

import (
	"errors"
	"testing"

	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("orderNumber")

		assert.Equal(t, "orderNumber", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: orderNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("orderNumber", cause)

		assert.Equal(t, "orderNumber", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: orderNumber (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("sequenceNumber", 1000, 0, 999)

		assert.Equal(t, "sequenceNumber", err.ParamName)
		assert.Equal(t, 1000, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 999, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is invalid: 1000 is sequenceNumber, min value is 0, max value is 999",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("companyId")

		assert.Equal(t, "companyId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: companyId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("companyId", cause)

		assert.Equal(t, "companyId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: companyId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("draft", "approve_site")

	assert.Equal(t, "draft", err.Status)
	assert.Equal(t, "approve_site", err.Action)
	assert.Equal(t, "invalid transition: action approve_site is not allowed in status draft", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestStaleStateError(t *testing.T) {
	err := errs.NewStaleStateError("order", "pending_site_manager")

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "pending_site_manager", err.Expected)
	assert.Equal(t, "stale state: order is no longer in status pending_site_manager", err.Error())
	require.ErrorIs(t, err, errs.ErrStaleState)
}

func TestPermissionDeniedError(t *testing.T) {
	err := errs.NewPermissionDeniedError("user-1", "approve_mgmt")

	assert.Equal(t, "permission denied: user user-1 may not perform approve_mgmt", err.Error())
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestNumberConflictError(t *testing.T) {
	t.Run("temporarily held", func(t *testing.T) {
		err := errs.NewNumberConflictError("25/052", errs.ConflictTemporarilyHeld)

		assert.Equal(t, "25/052", err.FullNumber)
		assert.Equal(t, errs.ConflictTemporarilyHeld, err.Reason)
		assert.Equal(t, "number conflict: 25/052 is temporarily_held", err.Error())
		require.ErrorIs(t, err, errs.ErrNumberConflict)
	})

	t.Run("permanently taken links to the conflicting order", func(t *testing.T) {
		err := errs.NewPermanentNumberConflictError("25/052", "order-9")

		assert.Equal(t, errs.ConflictPermanentlyTaken, err.Reason)
		assert.Equal(t, "order-9", err.ConflictingOrderID)
		assert.Equal(t, "number conflict: 25/052 is permanently_taken by order order-9", err.Error())
		require.ErrorIs(t, err, errs.ErrNumberConflict)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "stale state", errs.ErrStaleState.Error())
		assert.Equal(t, "permission denied", errs.ErrPermissionDenied.Error())
		assert.Equal(t, "number conflict", errs.ErrNumberConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("orderNumber"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("seq", 1000, 0, 999), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("companyId"), errs.ErrValueIsRequired)
	})
}
