package services

import (
	"context"
	"errors"
	"fmt"

	"checkin-backend/internal/auth"
	"checkin-backend/internal/config"
	"checkin-backend/internal/models"
)

// ErrInvalidCredentials is returned when no credential matches
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialSource yields the directory's credential pairs. The sheet
// client satisfies it; tests substitute a fixed list.
type CredentialSource interface {
	FetchCredentials(ctx context.Context) ([]models.Credential, error)
}

type AuthService struct {
	cfg         *config.Config
	credentials CredentialSource
	jwtManager  *auth.JWTManager
}

func NewAuthService(cfg *config.Config, credentials CredentialSource, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		cfg:         cfg,
		credentials: credentials,
		jwtManager:  jwtManager,
	}
}

// Login authenticates a username/password pair. The fixed admin
// credential is checked first and short-circuits the directory fetch
// entirely; everything else is an exact, case-sensitive match against
// the accounts view. The returned user carries a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.SessionUser, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	if username == s.cfg.Admin.Username &&
		auth.VerifyAdminSecret(password, s.cfg.Admin.Password, s.cfg.Admin.PasswordHash) {
		return s.issue(&models.SessionUser{
			Name:     "Administrator",
			Username: s.cfg.Admin.Username,
			Role:     models.RoleAdmin,
		})
	}

	creds, err := s.credentials.FetchCredentials(ctx)
	if err != nil {
		return nil, err
	}

	for _, cred := range creds {
		if cred.Username == username && cred.Password == password {
			return s.issue(&models.SessionUser{
				Name:     cred.Name,
				Username: cred.Username,
				Role:     models.RoleEmployee,
			})
		}
	}

	return nil, ErrInvalidCredentials
}

func (s *AuthService) issue(user *models.SessionUser) (*models.SessionUser, error) {
	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	user.Token = token
	return user, nil
}
