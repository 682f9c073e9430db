package utilities

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session cookie names. The secure variant is set when the request arrived
// over TLS; the route guard accepts either.
const (
	SessionCookieName       = "session_token"
	SecureSessionCookieName = "__Secure-session_token"
)

// Claims represents the session token payload. Roles are deliberately not
// embedded: role membership is resolved from the database on every
// authorization check, so role changes apply without re-login.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed session token for the given identity
func GenerateToken(userID uint, email, fullName, secret string, expireHours int) (string, error) {
	claims := Claims{
		UserID:   userID,
		Email:    email,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "storefront-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken verifies a session token's signature and expiry
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
