package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-info-gateway/internal/models"
	"movie-info-gateway/internal/service"
	"movie-info-gateway/internal/upstream"
)

func TestLoginTokenFieldVariants(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"camel case", `{"accessToken":"tok","user":{"username":"bob"}}`},
		{"snake case", `{"access_token":"tok","user":{"username":"bob"}}`},
		{"plain", `{"token":"tok","user":{"username":"bob"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			api.handle("POST /auth/login", http.StatusOK, tt.body)
			svc := service.NewAuthService(api.client(t))

			session, err := svc.Login(context.Background(), models.LoginRequest{Username: "bob", Password: "pw"})
			require.NoError(t, err)
			assert.Equal(t, "tok", session.AccessToken)
			assert.Equal(t, "bob", session.User["username"])
		})
	}
}

func TestLoginFetchesProfileWithNewToken(t *testing.T) {
	api := newFakeAPI()
	api.handle("POST /auth/login", http.StatusOK, `{"accessToken":"fresh"}`)
	var auth string
	api.mux.HandleFunc("GET /users/profile", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"username":"bob","email":"bob@example.com"}`))
	})
	svc := service.NewAuthService(api.client(t))

	session, err := svc.Login(context.Background(), models.LoginRequest{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh", auth)
	assert.Equal(t, "bob@example.com", session.User["email"])
}

func TestLoginProfileFailureKeepsSession(t *testing.T) {
	api := newFakeAPI()
	api.handle("POST /auth/login", http.StatusOK, `{"accessToken":"fresh"}`)
	svc := service.NewAuthService(api.client(t))

	session, err := svc.Login(context.Background(), models.LoginRequest{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", session.AccessToken)
	assert.Nil(t, session.User)
}

func TestLoginWithoutToken(t *testing.T) {
	api := newFakeAPI()
	api.handle("POST /auth/login", http.StatusOK, `{"success":false}`)
	svc := service.NewAuthService(api.client(t))

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "bob", Password: "bad"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginRejected(t *testing.T) {
	api := newFakeAPI()
	api.handle("POST /auth/login", http.StatusUnauthorized, `{"message":"Wrong password"}`)
	svc := service.NewAuthService(api.client(t))

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "bob", Password: "bad"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode(err))
}

func TestRegisterAndProfilePassThrough(t *testing.T) {
	api := newFakeAPI()
	api.handle("POST /auth/register", http.StatusCreated, `{"id":3,"username":"bob"}`)
	api.handle("GET /users/profile", http.StatusOK, `{"username":"bob"}`)
	svc := service.NewAuthService(api.client(t))

	created, err := svc.Register(context.Background(), models.RegisterRequest{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 3.0, "username": "bob"}, created)

	profile, err := svc.Profile(upstream.WithToken(context.Background(), "t"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"username": "bob"}, profile)
}
