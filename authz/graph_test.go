package authz

import (
	"sync"
	"testing"

	"storefront-backend/models"

	"github.com/stretchr/testify/require"
)

func TestAssignRoleAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	role := createRole(t, db, "support")

	require.NoError(t, AssignRole(db, user.ID, role.ID))

	err := AssignRole(db, user.ID, role.ID)
	require.ErrorIs(t, err, ErrDuplicateAssignment)

	var count int64
	db.Model(&models.UserRole{}).Where("user_id = ? AND role_id = ?", user.ID, role.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestAssignRoleMissingEntities(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	role := createRole(t, db, "support")

	require.ErrorIs(t, AssignRole(db, 999999, role.ID), ErrUserNotFound)
	require.ErrorIs(t, AssignRole(db, user.ID, 999999), ErrRoleNotFound)
}

func TestRevokeRole(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	role := createRole(t, db, "support")

	require.ErrorIs(t, RevokeRole(db, user.ID, role.ID), ErrAssignmentNotFound)

	require.NoError(t, AssignRole(db, user.ID, role.ID))
	require.NoError(t, RevokeRole(db, user.ID, role.ID))

	var count int64
	db.Model(&models.UserRole{}).Where("user_id = ?", user.ID).Count(&count)
	require.EqualValues(t, 0, count)

	// Revoking frees the pair for a fresh assignment
	require.NoError(t, AssignRole(db, user.ID, role.ID))
}

func TestConcurrentDuplicateAssignYieldsOneRow(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	role := createRole(t, db, "support")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = AssignRole(db, user.ID, role.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	require.Equal(t, 1, succeeded, "exactly one assignment may win")

	var count int64
	db.Model(&models.UserRole{}).Where("user_id = ? AND role_id = ?", user.ID, role.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestAssignAndRevokePermission(t *testing.T) {
	db := newTestDB(t)
	role := createRole(t, db, "support")
	permission := createPermission(t, db, "orders.read")

	require.ErrorIs(t, AssignPermission(db, 999999, permission.ID), ErrRoleNotFound)
	require.ErrorIs(t, AssignPermission(db, role.ID, 999999), ErrPermissionNotFound)

	require.NoError(t, AssignPermission(db, role.ID, permission.ID))
	require.ErrorIs(t, AssignPermission(db, role.ID, permission.ID), ErrDuplicateAssignment)

	require.NoError(t, RevokePermission(db, role.ID, permission.ID))
	require.ErrorIs(t, RevokePermission(db, role.ID, permission.ID), ErrAssignmentNotFound)
}

func TestPromoteToAdminIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	createRole(t, db, models.RoleAdmin)

	require.NoError(t, PromoteToAdmin(db, user.Email))
	require.NoError(t, PromoteToAdmin(db, user.Email))

	var count int64
	db.Model(&models.UserRole{}).Where("user_id = ?", user.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestPromoteToAdminMissingEntities(t *testing.T) {
	db := newTestDB(t)
	createRole(t, db, models.RoleAdmin)

	require.ErrorIs(t, PromoteToAdmin(db, "nobody@example.com"), ErrUserNotFound)

	db2 := newTestDB(t)
	user := createUser(t, db2, "alice", "alice2@example.com", "password123")
	require.ErrorIs(t, PromoteToAdmin(db2, user.Email), ErrRoleNotFound)
}

func TestEnsureCustomerRole(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")

	// No customer role seeded: tolerated, no assignment
	require.NoError(t, EnsureCustomerRole(db, user.ID))

	var count int64
	db.Model(&models.UserRole{}).Where("user_id = ?", user.ID).Count(&count)
	require.EqualValues(t, 0, count)

	role := createRole(t, db, models.RoleCustomer)
	require.NoError(t, EnsureCustomerRole(db, user.ID))
	require.NoError(t, EnsureCustomerRole(db, user.ID)) // repeat is a no-op

	db.Model(&models.UserRole{}).Where("user_id = ? AND role_id = ?", user.ID, role.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestDeleteUserCascadesAssignments(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	role := createRole(t, db, "support")
	require.NoError(t, AssignRole(db, user.ID, role.ID))

	require.NoError(t, DeleteUser(db, user.ID))
	require.ErrorIs(t, DeleteUser(db, user.ID), ErrUserNotFound)

	var count int64
	db.Model(&models.UserRole{}).Where("user_id = ?", user.ID).Count(&count)
	require.EqualValues(t, 0, count)

	// Soft delete keeps the row but hides it from queries
	var total int64
	db.Unscoped().Model(&models.User{}).Where("id = ?", user.ID).Count(&total)
	require.EqualValues(t, 1, total)
}

func TestDeleteRoleCascadesAssignmentsAndPermissions(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	role := createRole(t, db, "support")
	permission := createPermission(t, db, "orders.read")
	require.NoError(t, AssignRole(db, user.ID, role.ID))
	require.NoError(t, AssignPermission(db, role.ID, permission.ID))

	require.NoError(t, DeleteRole(db, role.ID))
	require.ErrorIs(t, DeleteRole(db, role.ID), ErrRoleNotFound)

	var userRoles, rolePerms int64
	db.Model(&models.UserRole{}).Where("role_id = ?", role.ID).Count(&userRoles)
	db.Model(&models.RolePermission{}).Where("role_id = ?", role.ID).Count(&rolePerms)
	require.EqualValues(t, 0, userRoles)
	require.EqualValues(t, 0, rolePerms)
}
