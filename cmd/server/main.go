package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/jhamir-web/voyago-web-sub000/internal/aggregate"  // Rating hub and favorite toggles
	"github.com/jhamir-web/voyago-web-sub000/internal/config"     // Internal config loader
	"github.com/jhamir-web/voyago-web-sub000/internal/database"   // MySQL connector
	"github.com/jhamir-web/voyago-web-sub000/internal/handler"    // HTTP handlers
	"github.com/jhamir-web/voyago-web-sub000/internal/middleware" // Cache and rate limit middleware
	"github.com/jhamir-web/voyago-web-sub000/internal/queue"      // Review event consumer
	"github.com/jhamir-web/voyago-web-sub000/internal/repository" // Data access layer
	"github.com/jhamir-web/voyago-web-sub000/internal/router"     // Internal router setup
)

func main() {
	// Load .env if present; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client turns the cache and rate limit
	// middleware into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache and rate limiting disabled")
	}

	// Repositories
	listingRepo := repository.NewListingRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	// Aggregation layer: in-process rating hub fed by the review event
	// consumer, and the favorite toggle serialized per (user, listing).
	hub := aggregate.NewHub()
	favorites := aggregate.NewFavorites(favoriteRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	discoveryHandler := &handler.DiscoveryHandler{
		ListingRepo: listingRepo,
		BookingRepo: bookingRepo,
		ReviewRepo:  reviewRepo,
		Hub:         hub,
	}
	favoriteHandler := handler.NewFavoriteHandler(favorites, listingRepo)
	reviewHandler := handler.NewReviewHandler(reviewRepo, listingRepo)

	e := echo.New() // Create Echo instance

	// The browse endpoints are the hot read path, so they get the
	// Redis-backed response cache and token-bucket rate limiter.
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	router.RegisterRoutes(e) // Health check
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterDiscovery(e, discoveryHandler, rateMW, cacheMW)
	router.RegisterEngagement(e, favoriteHandler, reviewHandler, cfg.JWTSecret)

	// The consumer keeps the rating hub in sync with moderation outcomes.
	// It reconnects with backoff on broker failures, so a dead broker at
	// startup only delays aggregation instead of killing the server.
	go func() {
		if err := queue.StartReviewConsumer(reviewRepo, hub); err != nil {
			log.Printf("review consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
