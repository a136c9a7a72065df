package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"

	"movie-info-gateway/internal/models"
	"movie-info-gateway/internal/normalize"
	"movie-info-gateway/internal/upstream"
)

// tokenFields are the names the movie API has used for the access token.
var tokenFields = []string{"accessToken", "access_token", "token"}

// AuthService handles login, registration and profile lookups. Nothing here is
// cached.
type AuthService struct {
	api *upstream.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(api *upstream.Client) *AuthService {
	return &AuthService{api: api}
}

// Login exchanges credentials for a session. When the login response does not
// include the user, the profile is fetched with the new token; failing that,
// the session has no user.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	raw, err := s.api.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	token := extractToken(raw)
	if token == "" {
		return nil, ErrInvalidCredentials
	}
	session := &models.Session{AccessToken: token}

	if user := gjson.GetBytes(raw, "user"); user.IsObject() {
		var u normalize.Object
		if err := json.Unmarshal([]byte(user.Raw), &u); err == nil {
			session.User = u
			return session, nil
		}
	}

	profile, err := s.api.Profile(upstream.WithToken(ctx, token))
	if err != nil {
		slog.Warn("failed to fetch profile after login", "username", req.Username, "error", err)
		return session, nil
	}
	session.User = models.Object(profile)
	return session, nil
}

// Register creates an account and returns the upstream answer.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (any, error) {
	body, err := s.api.Register(ctx, req.Username, req.Password, req.Email, req.Name)
	if err != nil {
		return nil, fmt.Errorf("register failed: %w", err)
	}
	return body, nil
}

// Profile returns the user the context token belongs to.
func (s *AuthService) Profile(ctx context.Context) (any, error) {
	body, err := s.api.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return body, nil
}

func extractToken(raw []byte) string {
	for _, field := range tokenFields {
		if t := gjson.GetBytes(raw, field); t.Type == gjson.String && t.String() != "" {
			return t.String()
		}
	}
	return ""
}
