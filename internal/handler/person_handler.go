package handler

import (
	"github.com/gofiber/fiber/v3"

	"movie-info-gateway/internal/service"
)

// PersonHandler handles HTTP requests for persons.
type PersonHandler struct {
	svc *service.PersonService
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(svc *service.PersonService) *PersonHandler {
	return &PersonHandler{svc: svc}
}

// PersonDetail returns a person and their movies.
// @Summary Get person detail
// @Tags persons
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} models.PersonDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /persons/{id} [get]
func (h *PersonHandler) PersonDetail(c fiber.Ctx) error {
	id, ok := numericID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid person ID"})
	}

	detail, err := h.svc.PersonDetail(requestContext(c), id)
	if err != nil {
		return respondError(c, err, "failed to retrieve person details")
	}
	return c.JSON(detail)
}
