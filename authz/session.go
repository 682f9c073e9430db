package authz

import (
	"errors"
	"log"

	"storefront-backend/models"
	"storefront-backend/utilities"

	"gorm.io/gorm"
)

// Identity is the minimal authenticated identity carried by session tokens.
// It intentionally holds no role information; roles are resolved fresh from
// the database on every authorization check.
type Identity struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// timingDummyHash is compared against when the email does not resolve, so
// unknown-email and wrong-password attempts take comparable time.
var timingDummyHash string

func init() {
	hash, err := utilities.HashPassword("timing-equalization-dummy")
	if err != nil {
		log.Fatalf("Failed to prepare dummy password hash: %v", err)
	}
	timingDummyHash = hash
}

// Authenticate verifies credentials against the user store and returns the
// session identity. Unknown email and wrong password both return
// ErrInvalidCredentials; callers must not distinguish the two.
func Authenticate(db *gorm.DB, email, password string) (Identity, error) {
	if email == "" || password == "" {
		return Identity{}, ErrInvalidCredentials
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utilities.CheckPasswordHash(password, timingDummyHash)
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}

	if !utilities.CheckPasswordHash(password, user.Password) {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}
