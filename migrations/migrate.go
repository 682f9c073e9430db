package migrations

import (
	"log"

	"storefront-backend/authz"
	"storefront-backend/config"
	"storefront-backend/models"
	"storefront-backend/utilities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AutoMigrate runs database migrations and seeds reference data
func AutoMigrate(db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.Role{},
		&models.Permission{},
		&models.User{},
		&models.UserRole{},
		&models.RolePermission{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.Transaction{},
	)
	if err != nil {
		log.Printf("⚠️ Warning: Failed to migrate some tables: %v", err)
	} else {
		log.Println("✓ Database migration completed successfully")
	}

	seedDefaultRoles(db)
	seedDefaultPermissions(db)
	seedAdminUser(db, cfg)
}

// seedDefaultRoles creates the well-known roles. Insert-first with
// ON CONFLICT DO NOTHING so repeated boots and concurrent instances are safe.
func seedDefaultRoles(db *gorm.DB) {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full dashboard access"},
		{Name: models.RoleCustomer, Description: "Registered shopper"},
	}

	for _, role := range roles {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&role).Error
		if err != nil {
			log.Printf("Failed to seed role %s: %v", role.Name, err)
		}
	}
}

// seedDefaultPermissions creates the baseline permission set
func seedDefaultPermissions(db *gorm.DB) {
	names := []string{
		"catalog.read",
		"catalog.write",
		"orders.read",
		"orders.write",
		"users.manage",
		"roles.manage",
	}

	for _, name := range names {
		permission := models.Permission{Name: name}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&permission).Error
		if err != nil {
			log.Printf("Failed to seed permission %s: %v", name, err)
		}
	}
}

// seedAdminUser creates the first admin account from config. Skipped unless
// ADMIN_PASSWORD is set.
func seedAdminUser(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user seed")
		return
	}

	var existingUser models.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existingUser).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := utilities.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	user := models.User{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Password: hashedPassword,
		FullName: "Administrator",
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
		return
	}

	if err := authz.PromoteToAdmin(db, user.Email); err != nil {
		log.Printf("Failed to assign admin role: %v", err)
		return
	}

	log.Printf("✓ Admin user created successfully (email: %s)", cfg.AdminEmail)
}
