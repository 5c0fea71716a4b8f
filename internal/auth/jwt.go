package auth

import (
	"errors"
	"time"

	"checkin-backend/internal/config"
	"checkin-backend/internal/models"
	"checkin-backend/internal/timeutil"

	"github.com/golang-jwt/jwt/v5"
)

// Session validity windows. The original stored these client-side; the
// rebuild enforces them in the token itself.
const (
	EmployeeSessionTTL = 7 * 24 * time.Hour
	AdminSessionTTL    = 24 * time.Hour
)

type Claims struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	cfg *config.Config
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{cfg: cfg}
}

// GenerateToken creates a session token for a logged-in user. Admin
// sessions expire after 24 hours, employee sessions after 7 days.
func (j *JWTManager) GenerateToken(user *models.SessionUser) (string, error) {
	now := timeutil.Now()

	ttl := EmployeeSessionTTL
	if user.Role == models.RoleAdmin {
		ttl = AdminSessionTTL
	}

	claims := &Claims{
		Name:     user.Name,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.cfg.JWT.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.cfg.JWT.Secret))
}

// ValidateToken verifies a session token and returns the claims
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(j.cfg.JWT.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
