package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/gostudiom/learn-api/internal/access"
	"github.com/gostudiom/learn-api/internal/config"
	"github.com/gostudiom/learn-api/internal/database"
	"github.com/gostudiom/learn-api/internal/handler"
	"github.com/gostudiom/learn-api/internal/queue"
	"github.com/gostudiom/learn-api/internal/repository"
	"github.com/gostudiom/learn-api/internal/router"
	queue_publisher "github.com/gostudiom/learn-api/internal/service"
)

func main() {
	// .env is a local development convenience; in deployment the variables
	// come from the environment itself.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables the response cache and rate
	// limiter, nothing else depends on it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	jurisdictions := repository.NewJurisdictionRepo(db)
	regulations := repository.NewRegulationRepo(db)
	knowledge := repository.NewKnowledgeRepo(db)
	sources := repository.NewSourceRepo(db)
	profiles := repository.NewProfileRepo(db)
	settings := repository.NewSettingRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	resolver := access.NewResolver(profiles, settings)
	resolver.Publish = func(ctx context.Context, userID uint64, slug string, tier access.Tier) {
		// Best-effort analytics event; a broker outage must never block a
		// market selection.
		_ = queue_publisher.PublishMarketSelected(ctx, queue.MarketSelectedEvent{
			UserID:     userID,
			MarketSlug: slug,
			Tier:       string(tier),
			SelectedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	markets := handler.NewMarketHandler(jurisdictions, regulations, knowledge, sources, resolver)
	account := handler.NewAccountHandler(users, jurisdictions, resolver)
	auth := handler.NewAuthHandler(cfg, users, tokens)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterMarkets(e, markets, cfg.JWTSecret, rdb)
	router.RegisterAuth(e, auth, account, cfg.JWTSecret)

	go func() {
		if err := queue.StartMarketConsumer(); err != nil {
			log.Printf("market consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
