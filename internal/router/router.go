// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/course-catalog/internal/config"
	"github.com/iliyamo/course-catalog/internal/handler"
	"github.com/iliyamo/course-catalog/internal/middleware"
)

// RegisterRoutes registers the routes that carry no resource semantics:
// the health check and the root greeting.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/", handler.Root)
	e.GET("/api", handler.Welcome)
}

// RegisterUsers registers the user endpoints under /api.  Creation is
// open; the self-read authenticates inside the handler.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler) {
	g := e.Group("/api")
	g.POST("/users", h.Create)
	g.GET("/users", h.Me)
}

// RegisterCourses registers the course endpoints under /api.  Reads are
// public and served through the response cache; mutating handlers run
// validation, then authentication, then the ownership check.
func RegisterCourses(e *echo.Echo, h *handler.CourseHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/api")

	cached := middleware.Cache(cacheCfg, rdb)
	g.GET("/courses", h.List, cached)
	g.GET("/courses/:id", h.Get, cached)

	g.POST("/courses", h.Create)
	g.PUT("/courses/:id", h.Update)
	g.DELETE("/courses/:id", h.Delete)
}
