package authz

import (
	"errors"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignRole grants a role to a user. The join row is inserted first and the
// composite unique index is the duplicate arbiter; there is no existence
// pre-check, so concurrent duplicate attempts cannot both succeed.
func AssignRole(db *gorm.DB, userID, roleID uint) error {
	if err := requireUser(db, userID); err != nil {
		return err
	}
	if err := requireRole(db, roleID); err != nil {
		return err
	}

	userRole := models.UserRole{UserID: userID, RoleID: roleID}
	if err := db.Create(&userRole).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			return ErrDuplicateAssignment
		}
		return err
	}
	return nil
}

// RevokeRole removes a role from a user
func RevokeRole(db *gorm.DB, userID, roleID uint) error {
	if err := requireUser(db, userID); err != nil {
		return err
	}
	if err := requireRole(db, roleID); err != nil {
		return err
	}

	result := db.Where("user_id = ? AND role_id = ?", userID, roleID).Delete(&models.UserRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// AssignPermission attaches a permission to a role, insert-first like AssignRole
func AssignPermission(db *gorm.DB, roleID, permissionID uint) error {
	if err := requireRole(db, roleID); err != nil {
		return err
	}
	if err := db.First(&models.Permission{}, permissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermissionNotFound
		}
		return err
	}

	rolePermission := models.RolePermission{RoleID: roleID, PermissionID: permissionID}
	if err := db.Create(&rolePermission).Error; err != nil {
		if utilities.IsUniqueViolation(err) {
			return ErrDuplicateAssignment
		}
		return err
	}
	return nil
}

// RevokePermission detaches a permission from a role
func RevokePermission(db *gorm.DB, roleID, permissionID uint) error {
	result := db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).Delete(&models.RolePermission{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// PromoteToAdmin grants the admin role to the user with the given email.
// The operation is idempotent: promoting an existing admin is a no-op.
func PromoteToAdmin(db *gorm.DB, email string) error {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	var role models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	userRole := models.UserRole{UserID: user.ID, RoleID: role.ID}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "role_id"}},
		DoNothing: true,
	}).Create(&userRole).Error
}

// EnsureCustomerRole grants the seeded customer role to a new user. A missing
// customer role is tolerated; registration must not fail because seeding
// hasn't run.
func EnsureCustomerRole(db *gorm.DB, userID uint) error {
	var role models.Role
	if err := db.Where("name = ?", models.RoleCustomer).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	userRole := models.UserRole{UserID: userID, RoleID: role.ID}
	if err := db.Create(&userRole).Error; err != nil && !utilities.IsUniqueViolation(err) {
		return err
	}
	return nil
}

// DeleteUser soft-deletes a user and removes its role assignments in one
// transaction. The join rows must be cleaned up explicitly since soft
// deletes don't fire foreign-key cascades.
func DeleteUser(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

// DeleteRole soft-deletes a role and removes its user assignments and
// permission attachments in one transaction.
func DeleteRole(db *gorm.DB, roleID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := requireRole(tx, roleID); err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Role{}, roleID).Error
	})
}

func requireUser(db *gorm.DB, userID uint) error {
	if err := db.First(&models.User{}, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func requireRole(db *gorm.DB, roleID uint) error {
	if err := db.First(&models.Role{}, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}
	return nil
}
