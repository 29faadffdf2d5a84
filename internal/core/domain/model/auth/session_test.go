package auth_test

import (
	"testing"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("valid roles round trip", func(t *testing.T) {
		for _, name := range []string{"employee", "site_manager", "management", "supplier", "admin"} {
			role, err := auth.RoleFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, role.String())
		}
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := auth.RoleFromString("superuser")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRoleValidate(t *testing.T) {
	require.NoError(t, auth.RoleSiteManager.Validate())
	require.ErrorIs(t, auth.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
}

func TestRoleHasBlanketAuthority(t *testing.T) {
	assert.True(t, auth.RoleAdmin.HasBlanketAuthority())
	assert.False(t, auth.RoleSiteManager.HasBlanketAuthority())
	assert.False(t, auth.RoleManagement.HasBlanketAuthority())
}

func TestNewSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userID := kernel.NewUUID()
		companyID := kernel.NewUUID()

		session, err := auth.NewSession(userID, companyID, auth.RoleEmployee)

		require.NoError(t, err)
		require.NoError(t, session.Validate())
		assert.True(t, session.UserID().IsEqual(userID))
		assert.True(t, session.CompanyID().IsEqual(companyID))
		assert.Equal(t, auth.RoleEmployee, session.Role())
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := auth.NewSession(kernel.UUID{}, kernel.NewUUID(), auth.RoleEmployee)
		require.Error(t, err)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := auth.NewSession(kernel.NewUUID(), kernel.NewUUID(), auth.RoleUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var session auth.Session
		require.ErrorIs(t, session.Validate(), auth.ErrSessionIsNotConstructed)
	})
}
