package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/course-catalog/internal/config"
	"github.com/iliyamo/course-catalog/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/course-catalog/internal/middleware" // import middleware for token authentication and caching
)

// ErrorHandler maps every error Echo surfaces into the uniform envelope.
// Unmatched routes become 404 "Route not found"; anything without a known
// HTTP status, including recovered panics, becomes 500 "Something went
// wrong!".
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Something went wrong!"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch {
		case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
			code = http.StatusNotFound
			msg = "Route not found"
		default:
			if s, ok := he.Message.(string); ok && s != "" {
				msg = s
			}
		}
	}
	_ = c.JSON(code, handler.Envelope{Success: false, Error: msg})
}

// Register wires every API route under /api on the provided Echo instance.
// Public course reads sit behind the Redis response cache when rdb is
// non-nil; every mutating route and the profile routes sit behind the
// bearer-token auth guard.
func Register(e *echo.Echo, cfg config.Config, cacheCfg config.CacheConfig, rdb *redis.Client,
	a *handler.AuthHandler, ch *handler.CourseHandler, p *handler.ProfileHandler) {

	e.HTTPErrorHandler = ErrorHandler

	api := e.Group("/api")

	// Unauthenticated routes.
	api.GET("/health", handler.Health)
	api.POST("/auth/login", a.Login)

	// Public course reads, cacheable.
	courses := api.Group("/courses", middleware.ResponseCache(cacheCfg, rdb))
	courses.GET("", ch.List)
	courses.GET("/:id", ch.Get)

	// Protected routes: course mutations, logout and profile all require a
	// valid bearer token.
	auth := api.Group("", middleware.BearerAuth(cfg.JWTSecret))
	auth.POST("/auth/logout", a.Logout)
	auth.POST("/courses", ch.Create)
	auth.PUT("/courses/:id", ch.Update)
	auth.DELETE("/courses/:id", ch.Delete)
	auth.GET("/profile", p.Get)
	auth.PUT("/profile", p.Update)
}
