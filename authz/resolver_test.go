package authz

import (
	"testing"

	"storefront-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRolesReflectsAssignments(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	role := createRole(t, db, "support")
	identity := Identity{ID: user.ID, Email: user.Email}

	roles, err := ResolveRoles(db, identity)
	require.NoError(t, err)
	assert.Empty(t, roles)

	require.NoError(t, AssignRole(db, user.ID, role.ID))

	roles, err = ResolveRoles(db, identity)
	require.NoError(t, err)
	assert.Equal(t, []string{"support"}, roles)

	require.NoError(t, RevokeRole(db, user.ID, role.ID))

	roles, err = ResolveRoles(db, identity)
	require.NoError(t, err)
	assert.NotContains(t, roles, "support")
}

func TestResolveRolesUnknownUser(t *testing.T) {
	db := newTestDB(t)

	_, err := ResolveRoles(db, Identity{ID: 999999})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestResolveRolesDeletedUser(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	role := createRole(t, db, "support")
	require.NoError(t, AssignRole(db, user.ID, role.ID))

	require.NoError(t, DeleteUser(db, user.ID))

	// A token minted before deletion must not resolve to an empty role set
	_, err := ResolveRoles(db, Identity{ID: user.ID, Email: user.Email})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRoleChangesVisibleWithoutReauthentication(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	createRole(t, db, models.RoleCustomer)
	createRole(t, db, models.RoleAdmin)
	require.NoError(t, EnsureCustomerRole(db, user.ID))

	// Same identity (same session) before and after promotion
	identity, err := Authenticate(db, "alice@example.com", "password123")
	require.NoError(t, err)

	roles, err := ResolveRoles(db, identity)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleCustomer}, roles)
	assert.False(t, IsAdmin(roles))

	require.NoError(t, PromoteToAdmin(db, user.Email))

	roles, err = ResolveRoles(db, identity)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{models.RoleCustomer, models.RoleAdmin}, roles)
	assert.True(t, IsAdmin(roles))
}

func TestIsAdminCaseInsensitive(t *testing.T) {
	assert.True(t, IsAdmin([]string{"Admin"}))
	assert.True(t, IsAdmin([]string{"customer", "ADMIN"}))
	assert.False(t, IsAdmin([]string{"customer"}))
	assert.False(t, IsAdmin(nil))
	assert.False(t, IsAdmin([]string{"administrator"}))
}
