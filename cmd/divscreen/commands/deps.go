package commands

import (
	"fmt"

	"github.com/wonny/divscreen/internal/external/yahoo"
	"github.com/wonny/divscreen/internal/quotes"
	"github.com/wonny/divscreen/internal/store"
	"github.com/wonny/divscreen/pkg/config"
	"github.com/wonny/divscreen/pkg/database"
	"github.com/wonny/divscreen/pkg/httputil"
	"github.com/wonny/divscreen/pkg/logger"
	"github.com/wonny/divscreen/pkg/redis"
)

// appDeps bundles the shared plumbing behind every command that talks
// to the database and Yahoo Finance.
type appDeps struct {
	Config *config.Config
	Logger *logger.Logger
	DB     *database.DB
	Redis  *redis.Client
	Store  *store.PostgresStore
	Quotes *quotes.Service
}

// initDeps wires configuration, logging, storage and the quote service
func initDeps() (*appDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	httpClient := httputil.NewWithTimeout(cfg, log, cfg.Yahoo.Timeout)
	if redisClient.Enabled() {
		rateLimiter := redis.NewRateLimiter(redisClient, "divscreen")
		httpClient = httpClient.WithRateLimiter(rateLimiter, redis.YahooRateLimit)
	}

	yahooClient := yahoo.NewClient(cfg, httpClient, log)
	cache := redis.NewCache(redisClient, "divscreen")

	return &appDeps{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Store:  store.NewPostgresStore(db.Pool),
		Quotes: quotes.NewService(cfg, yahooClient, cache, log),
	}, nil
}

// Close releases database and redis connections
func (d *appDeps) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
