package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-info-gateway/internal/service"
	"movie-info-gateway/internal/upstream"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error onto a status code. Upstream 4xx answers
// are relayed with their message; anything else is reported as a bad gateway.
func respondError(c fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "invalid credentials"})
	}

	var re *upstream.RequestError
	if errors.As(err, &re) && re.StatusCode >= 400 && re.StatusCode < 500 {
		return c.Status(re.StatusCode).JSON(ErrorResponse{Error: re.Message})
	}

	slog.Error(fallback, "path", c.Path(), "error", err)
	return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: fallback})
}
