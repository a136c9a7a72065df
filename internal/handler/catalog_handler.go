package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"movie-info-gateway/internal/middleware"
	"movie-info-gateway/internal/models"
	"movie-info-gateway/internal/service"
	"movie-info-gateway/internal/upstream"
)

// CatalogHandler handles HTTP requests for movies.
type CatalogHandler struct {
	svc *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *CatalogHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movie-info-gateway",
	})
}

// Popular returns a page of popular movies.
// @Summary Popular movies
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.MovieList
// @Failure 502 {object} ErrorResponse
// @Router /movies/popular [get]
func (h *CatalogHandler) Popular(c fiber.Ctx) error {
	list, err := h.svc.Popular(requestContext(c), page(c))
	if err != nil {
		return respondError(c, err, "failed to retrieve popular movies")
	}
	return c.JSON(list)
}

// TopRated returns a page of top rated movies.
// @Summary Top rated movies
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.MovieList
// @Failure 502 {object} ErrorResponse
// @Router /movies/top-rated [get]
func (h *CatalogHandler) TopRated(c fiber.Ctx) error {
	list, err := h.svc.TopRated(requestContext(c), page(c))
	if err != nil {
		return respondError(c, err, "failed to retrieve top rated movies")
	}
	return c.JSON(list)
}

// Search returns a page of movies matching q.
// @Summary Search movies
// @Tags movies
// @Produce json
// @Param q query string true "Search text"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.MovieList
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /movies/search [get]
func (h *CatalogHandler) Search(c fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "missing search query",
		})
	}

	list, err := h.svc.Search(requestContext(c), q, page(c))
	if err != nil {
		return respondError(c, err, "failed to search movies")
	}
	return c.JSON(list)
}

// Home returns the landing page lists.
// @Summary Home feed
// @Tags movies
// @Produce json
// @Success 200 {object} models.HomeFeed
// @Failure 502 {object} ErrorResponse
// @Router /movies/home [get]
func (h *CatalogHandler) Home(c fiber.Ctx) error {
	feed, err := h.svc.HomeFeed(requestContext(c))
	if err != nil {
		return respondError(c, err, "failed to retrieve home feed")
	}
	return c.JSON(feed)
}

// MovieDetail returns a movie with credits and reviews.
// @Summary Get movie detail
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.MovieDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /movies/{id} [get]
func (h *CatalogHandler) MovieDetail(c fiber.Ctx) error {
	id, ok := numericID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid movie ID",
		})
	}

	detail, err := h.svc.MovieDetail(requestContext(c), id)
	if err != nil {
		return respondError(c, err, "failed to retrieve movie details")
	}
	return c.JSON(detail)
}

// page reads the page query parameter, clamped to the range the API serves.
func page(c fiber.Ctx) int {
	p := fiber.Query(c, "page", models.DefaultPage)
	if p < 1 {
		return models.DefaultPage
	}
	if p > models.MaxPage {
		return models.MaxPage
	}
	return p
}

func numericID(c fiber.Ctx) (string, bool) {
	id := c.Params("id")
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return "", false
	}
	return strconv.Itoa(n), true
}

// requestContext carries the caller's bearer token to the movie API.
func requestContext(c fiber.Ctx) context.Context {
	return upstream.WithToken(c.Context(), middleware.Token(c))
}
