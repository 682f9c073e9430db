package authz

import "errors"

// Sentinel errors returned by the authorization core. Controllers map these
// to HTTP statuses at the boundary.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrRoleNotFound        = errors.New("role not found")
	ErrPermissionNotFound  = errors.New("permission not found")
	ErrDuplicateAssignment = errors.New("assignment already exists")
	ErrAssignmentNotFound  = errors.New("assignment not found")
)
