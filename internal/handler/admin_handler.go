package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-info-gateway/internal/service"
)

// AdminHandler handles cache maintenance requests.
type AdminHandler struct {
	cache *service.Cache
	auth  *service.AuthService
}

// NewAdminHandler creates a new AdminHandler. Callers are checked against the
// movie API with auth before anything is flushed.
func NewAdminHandler(cache *service.Cache, auth *service.AuthService) *AdminHandler {
	return &AdminHandler{cache: cache, auth: auth}
}

// FlushCache drops every cached movie and person response. The bearer token
// must belong to a user the movie API knows.
// @Summary Flush response cache
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/cache [delete]
func (h *AdminHandler) FlushCache(c fiber.Ctx) error {
	if _, err := h.auth.Profile(requestContext(c)); err != nil {
		return respondError(c, err, "failed to verify caller")
	}

	n, err := h.cache.Invalidate(c.Context())
	if err != nil {
		slog.Error("cache flush failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "cache flush failed: " + err.Error(),
		})
	}
	slog.Info("cache flushed", "keys", n)
	return c.JSON(fiber.Map{
		"message":      "cache flushed",
		"keys_deleted": n,
	})
}
