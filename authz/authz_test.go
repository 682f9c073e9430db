package authz

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique DSN per call so repeated calls within one test get fresh databases
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// sqlite handles one writer at a time
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.Permission{},
		&models.User{},
		&models.UserRole{},
		&models.RolePermission{},
	), "migrate db")

	return db
}

func createUser(t *testing.T, db *gorm.DB, username, email, password string) models.User {
	t.Helper()
	hash, err := utilities.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		FullName: username,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createRole(t *testing.T, db *gorm.DB, name string) models.Role {
	t.Helper()
	role := models.Role{Name: name}
	require.NoError(t, db.Create(&role).Error)
	return role
}

func createPermission(t *testing.T, db *gorm.DB, name string) models.Permission {
	t.Helper()
	permission := models.Permission{Name: name}
	require.NoError(t, db.Create(&permission).Error)
	return permission
}
