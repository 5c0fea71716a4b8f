package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// VerifyAdminSecret checks a submitted password against the configured
// admin secret. When a bcrypt hash is configured it wins over the plain
// literal; the literal path uses a constant-time compare.
func VerifyAdminSecret(submitted, plain, hash string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(submitted)) == nil
	}
	if plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(plain)) == 1
}

// HashPassword generates a bcrypt hash, for provisioning
// ADMIN_PASSWORD_HASH out of band.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
