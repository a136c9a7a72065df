package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"movie-info-gateway/internal/models"
	"movie-info-gateway/internal/service"
)

// AuthHandler handles HTTP requests for accounts.
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login exchanges credentials for a session.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Session
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "username and password are required"})
	}

	session, err := h.svc.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err, "login failed")
	}
	return c.JSON(session)
}

// Register creates an account.
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "New account"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "username and password are required"})
	}

	created, err := h.svc.Register(c.Context(), req)
	if err != nil {
		return respondError(c, err, "registration failed")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Profile returns the logged in user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c fiber.Ctx) error {
	profile, err := h.svc.Profile(requestContext(c))
	if err != nil {
		return respondError(c, err, "failed to retrieve profile")
	}
	return c.JSON(profile)
}
