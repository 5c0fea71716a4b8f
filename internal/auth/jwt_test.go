package auth

import (
	"testing"
	"time"

	"checkin-backend/internal/config"
	"checkin-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.Issuer = "checkin-backend"
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testConfig("test-secret"))

	token, err := mgr.GenerateToken(&models.SessionUser{
		Name:     "Khai",
		Username: "khai01",
		Role:     models.RoleEmployee,
	})
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Khai", claims.Name)
	assert.Equal(t, "khai01", claims.Username)
	assert.Equal(t, models.RoleEmployee, claims.Role)
	assert.Equal(t, "checkin-backend", claims.Issuer)
}

func TestSessionTTLByRole(t *testing.T) {
	mgr := NewJWTManager(testConfig("test-secret"))

	adminToken, err := mgr.GenerateToken(&models.SessionUser{Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	employeeToken, err := mgr.GenerateToken(&models.SessionUser{Username: "khai01", Role: models.RoleEmployee})
	require.NoError(t, err)

	adminClaims, err := mgr.ValidateToken(adminToken)
	require.NoError(t, err)
	employeeClaims, err := mgr.ValidateToken(employeeToken)
	require.NoError(t, err)

	adminWindow := adminClaims.ExpiresAt.Sub(adminClaims.IssuedAt.Time)
	employeeWindow := employeeClaims.ExpiresAt.Sub(employeeClaims.IssuedAt.Time)
	assert.Equal(t, AdminSessionTTL, adminWindow.Round(time.Second))
	assert.Equal(t, EmployeeSessionTTL, employeeWindow.Round(time.Second))
}

func TestRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig("secret-a")).GenerateToken(
		&models.SessionUser{Username: "khai01", Role: models.RoleEmployee})
	require.NoError(t, err)

	_, err = NewJWTManager(testConfig("secret-b")).ValidateToken(token)
	assert.Error(t, err)
}

func TestRejectsGarbageToken(t *testing.T) {
	mgr := NewJWTManager(testConfig("test-secret"))
	_, err := mgr.ValidateToken("not.a.token")
	assert.Error(t, err)
}
