package handler

import (
	"github.com/gofiber/fiber/v3"

	"movie-info-gateway/internal/middleware"
)

// RegisterRoutes mounts the gateway API on router.
func RegisterRoutes(router fiber.Router, catalog *CatalogHandler, person *PersonHandler, auth *AuthHandler, admin *AdminHandler) {
	api := router.Group("/api/v1", middleware.BearerToken())
	api.Get("/health", catalog.Health)

	api.Get("/movies/popular", catalog.Popular)
	api.Get("/movies/top-rated", catalog.TopRated)
	api.Get("/movies/search", catalog.Search)
	api.Get("/movies/home", catalog.Home)
	api.Get("/movies/:id", catalog.MovieDetail)

	api.Get("/persons/:id", person.PersonDetail)

	api.Post("/auth/login", auth.Login)
	api.Post("/auth/register", auth.Register)
	api.Get("/auth/profile", middleware.RequireAuth(), auth.Profile)

	api.Delete("/admin/cache", middleware.RequireAuth(), admin.FlushCache)
}
