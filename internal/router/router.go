package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/smartseats/api/internal/config"
	"github.com/smartseats/api/internal/handler"
	"github.com/smartseats/api/internal/middleware"
)

// RegisterRoutes registers routes that carry no middleware.  Currently it
// exposes only the health check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the booking and query endpoints under /v1.  The whole
// group is rate limited; the read-only projections additionally sit
// behind the Redis response cache.  A nil Redis client turns both
// middlewares into pass-throughs.
func RegisterAPI(e *echo.Echo, res *handler.ReservationHandler, q *handler.QueryHandler, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
	v1 := e.Group("/v1")
	v1.Use(middleware.NewTokenBucket(rlCfg, rdb))

	v1.POST("/reservations", res.Create)
	v1.DELETE("/reservations/:id", res.Delete)

	reads := v1.Group("", middleware.NewRedisCache(cacheCfg, rdb))
	reads.GET("/events/:id/seats", q.SeatsForEvent)
	reads.GET("/users/:id/reservations", q.ReservationsForUser)
}
