// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jhamir-web/voyago-web-sub000/internal/handler"
	"github.com/jhamir-web/voyago-web-sub000/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check
// used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts a refresh token in the body or a bearer header and
	// does not itself require JWT middleware.
	g.POST("/logout", a.Logout)
	e.POST("/v1/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("GUEST", "HOST", "ADMIN"))
	auth.GET("/me", a.Me)
}

// RegisterDiscovery registers the public browse endpoints.  These are
// the hot read path, so the caller passes in the Redis-backed response
// cache and rate limit middleware (no-ops when Redis is unavailable).
func RegisterDiscovery(e *echo.Echo, d *handler.DiscoveryHandler, mws ...echo.MiddlewareFunc) {
	g := e.Group("/v1/listings", mws...)
	// Filtered, ordered listing feed: ?category=&q=&guests=&check_in=&check_out=
	g.GET("", d.BrowseListings)
	// Listing detail with its live rating aggregate.
	g.GET("/:id", d.GetListing)
}

// RegisterEngagement registers the authenticated favorite and review
// routes.  All of them require a valid access token; moderation is
// additionally restricted to admins.
func RegisterEngagement(e *echo.Echo, f *handler.FavoriteHandler, r *handler.ReviewHandler, jwtSecret string) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("GUEST", "HOST", "ADMIN"))

	// Per-listing favorite state for the calling user.
	auth.GET("/listings/:id/favorite", f.GetFavorite)
	auth.POST("/listings/:id/favorite", f.ToggleFavorite)

	// Review submission; reviews enter as pending.
	auth.POST("/listings/:id/reviews", r.CreateReview)

	// Moderation decides which reviews count toward ratings.
	mod := e.Group("/v1/reviews")
	mod.Use(middleware.JWTAuth(jwtSecret))
	mod.Use(middleware.RequireRole("ADMIN"))
	mod.POST("/:id/approve", r.ApproveReview)
	mod.POST("/:id/reject", r.RejectReview)
}
