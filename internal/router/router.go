// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/gostudiom/learn-api/internal/config"
	"github.com/gostudiom/learn-api/internal/handler"
	"github.com/gostudiom/learn-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterMarkets registers the market browse endpoints. The directory,
// search and category routes are public and sit behind the Redis response
// cache and rate limiter. The detail route takes OptionalJWTAuth so one
// route serves all three tiers, and deliberately skips the cache: its body
// depends on who is asking.
func RegisterMarkets(e *echo.Echo, m *handler.MarketHandler, jwtSecret string, rdb *redis.Client) {
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	limit := middleware.NewTokenBucket(rlCfg, rdb)

	pub := e.Group("/v1", limit, cache)
	pub.GET("/markets", m.Directory)
	pub.GET("/markets/search", m.Search)
	pub.GET("/categories", m.Categories)

	e.GET("/v1/markets/:slug", m.Detail, limit, middleware.OptionalJWTAuth(jwtSecret))
}

// RegisterAuth registers the auth endpoints and the protected account
// surface. Unauthenticated operations live under /v1/auth; protected
// endpoints live under /v1 behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, acct *handler.AccountHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts either a bearer token (revoke all sessions) or a
	// refresh token in the body (revoke one), so it stays outside the JWT
	// middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", acct.Me)
	auth.POST("/account/market", acct.SelectMarket)
}
