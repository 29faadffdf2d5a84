package kernel_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.NotEqual(t, kernel.UUID{}, id)
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDIsEqual(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	copied := first

	assert.True(t, first.IsEqual(copied))
	assert.False(t, first.IsEqual(second))
}

func TestUUIDValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("round trip through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})
}

func TestConstructorGuard(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()
		require.NoError(t, guard.Validate(nil))
	})

	t.Run("zero guard returns supplied error", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		err := guard.Validate(kernel.ErrDefaultConstructorGuard)
		require.ErrorIs(t, err, kernel.ErrDefaultConstructorGuard)
	})

	t.Run("zero guard falls back to default error", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		require.ErrorIs(t, guard.Validate(nil), kernel.ErrDefaultConstructorGuard)
	})
}
