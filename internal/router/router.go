// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rentflix/api/internal/auth"
	"github.com/rentflix/api/internal/config"
	"github.com/rentflix/api/internal/handler"
	"github.com/rentflix/api/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	Genres    *handler.GenreHandler
	Movies    *handler.MovieHandler
	Customers *handler.CustomerHandler
	Rentals   *handler.RentalHandler
	Returns   *handler.ReturnsHandler
}

// Register mounts the full API surface under /api.
//
// Reads on genres and movies are public and cached; every mutating route
// requires a token, and deletes additionally require an admin. Login and
// registration sit behind the rate limiter so credential guessing is slow.
func Register(e *echo.Echo, h Handlers, tokens *auth.Tokens, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	requireToken := middleware.RequireToken(tokens)
	requireAdmin := middleware.RequireAdmin()
	cached := middleware.ResponseCache(config.LoadCacheConfig(), rdb)
	limited := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)

	api := e.Group("/api")

	api.POST("/auth", h.Auth.Login, limited)
	api.POST("/users", h.Users.Register, limited)
	api.GET("/users/me", h.Users.Me, requireToken)

	api.GET("/genres", h.Genres.ListGenres, cached)
	api.GET("/genres/:id", h.Genres.GetGenre, cached)
	api.POST("/genres", h.Genres.CreateGenre, requireToken)
	api.PUT("/genres/:id", h.Genres.UpdateGenre, requireToken)
	api.DELETE("/genres/:id", h.Genres.DeleteGenre, requireToken, requireAdmin)

	api.GET("/movies", h.Movies.ListMovies, cached)
	api.GET("/movies/:id", h.Movies.GetMovie, cached)
	api.POST("/movies", h.Movies.CreateMovie, requireToken)
	api.PUT("/movies/:id", h.Movies.UpdateMovie, requireToken)
	api.DELETE("/movies/:id", h.Movies.DeleteMovie, requireToken, requireAdmin)

	api.GET("/customers", h.Customers.ListCustomers, requireToken)
	api.GET("/customers/:id", h.Customers.GetCustomer, requireToken)
	api.POST("/customers", h.Customers.CreateCustomer, requireToken)
	api.PUT("/customers/:id", h.Customers.UpdateCustomer, requireToken)
	api.DELETE("/customers/:id", h.Customers.DeleteCustomer, requireToken, requireAdmin)

	api.GET("/rentals", h.Rentals.ListRentals, requireToken)
	api.POST("/rentals", h.Rentals.CreateRental, requireToken)

	api.POST("/returns", h.Returns.ProcessReturn, requireToken)
}
