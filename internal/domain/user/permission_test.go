//go:build unit

package user_test

import (
	"testing"

	"loyalty-engine/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("closed set of roles", func(t *testing.T) {
		for _, s := range []string{"ADMIN", "MANAGER", "EMPLOYEE", "CLIENT"} {
			r, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, r.String())
		}

		for _, s := range []string{"", "admin", "VALIDATEDEMPLOYEE", "USER"} {
			_, err := user.NewRole(s)
			require.ErrorIs(t, err, user.ErrInvalidRole, s)
		}
	})

	t.Run("staff roles", func(t *testing.T) {
		assert.True(t, user.RoleAdmin.IsStaff())
		assert.True(t, user.RoleManager.IsStaff())
		assert.True(t, user.RoleEmployee.IsStaff())
		assert.False(t, user.RoleClient.IsStaff())
	})
}

func TestRole_Can(t *testing.T) {
	testCases := []struct {
		role  user.Role
		perm  user.Permission
		allow bool
	}{
		{user.RoleAdmin, user.PermManageBenefits, true},
		{user.RoleManager, user.PermManageBenefits, true},
		{user.RoleEmployee, user.PermManageBenefits, false},
		{user.RoleClient, user.PermManageBenefits, false},
		{user.RoleAdmin, user.PermManageConversion, true},
		{user.RoleManager, user.PermManageConversion, true},
		{user.RoleEmployee, user.PermManageConversion, false},
		{user.RoleEmployee, user.PermManageOrders, true},
		{user.RoleClient, user.PermManageOrders, false},
		{user.RoleClient, user.PermViewOwnAccount, true},
		{user.RoleAdmin, user.PermViewOwnAccount, false},
		{user.RoleClient, user.PermViewBenefits, true},
		{user.Role("GHOST"), user.PermViewBenefits, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role)+"/"+string(tc.perm), func(t *testing.T) {
			assert.Equal(t, tc.allow, tc.role.Can(tc.perm))
		})
	}
}

func TestActor_Label(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, "boss@bar.test", user.Actor{ID: id, Email: "boss@bar.test"}.Label())
	assert.Equal(t, id.String(), user.Actor{ID: id}.Label())
}
