package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	_ "github.com/rogerio-castellano/garment-inventory/docs"
	"github.com/rogerio-castellano/garment-inventory/internal/auth"
	"github.com/rogerio-castellano/garment-inventory/internal/config"
	"github.com/rogerio-castellano/garment-inventory/internal/db"
	"github.com/rogerio-castellano/garment-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/garment-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/garment-inventory/internal/http/router"
	"github.com/rogerio-castellano/garment-inventory/internal/notify"
	"github.com/rogerio-castellano/garment-inventory/internal/redissvc"
	"github.com/rogerio-castellano/garment-inventory/internal/repo"
	"github.com/rogerio-castellano/garment-inventory/internal/settings"
)

// @title Garment Inventory API
// @version 1.0
// @description REST API for managing garments, suppliers, orders and sales.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Could not prepare schema: %v", err)
	}

	ctx := context.Background()
	var redisService *redissvc.RedisService
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unreachable, running without dashboard cache: %v", err)
		} else {
			defer rdb.Close()
			redisService = redissvc.NewRedisService(rdb, ctx)
		}
	}
	handlers.SetRedisService(redisService)

	userRepo := repo.NewPostgresUserRepository(database)
	activityRepo := repo.NewPostgresActivityRepository(database)

	handlers.SetGarmentRepo(repo.NewPostgresGarmentRepository(database))
	handlers.SetSupplierRepo(repo.NewPostgresSupplierRepository(database))
	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))
	handlers.SetUserRepo(userRepo)
	handlers.SetActivityRepo(activityRepo)
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))

	handlers.SetAuthService(auth.NewService(userRepo, activityRepo))
	handlers.SetNotificationFeed(notify.NewFeed())

	settingsStore := settings.NewStore(repo.NewPostgresSettingsRepository(database))
	if err := settingsStore.Load(); err != nil {
		log.Fatalf("Could not load settings: %v", err)
	}
	handlers.SetSettingsStore(settingsStore)

	r := router.NewRouter()
	log.Printf("Server running on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
		log.Fatal(err)
	}
}
