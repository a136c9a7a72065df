package models

import "movie-info-gateway/internal/normalize"

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for creating an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Session is what the browser keeps after logging in.
type Session struct {
	AccessToken string           `json:"accessToken"`
	User        normalize.Object `json:"user"`
}
