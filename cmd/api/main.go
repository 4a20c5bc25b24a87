package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coreforge/mrp/internal/api"
	"github.com/coreforge/mrp/internal/core/service"
	"github.com/coreforge/mrp/internal/infrastructure/config"
	mongodb "github.com/coreforge/mrp/internal/infrastructure/db/mongo"
	redisdb "github.com/coreforge/mrp/internal/infrastructure/db/redis"
	"github.com/coreforge/mrp/internal/infrastructure/memstore"
	"github.com/coreforge/mrp/internal/infrastructure/queue"
	"github.com/coreforge/mrp/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title MRP API
// @version 1.0
// @description Manufacturing resource planning backend for CPU assembly: orders, inventory, maintenance and financial reporting.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	inventory := memstore.NewInventoryStore(memstore.SeedInventory())
	team := memstore.NewTeamStore(memstore.SeedTeam())

	movementService := service.NewMovementService(
		inventory,
		mongodb.NewMovementRepository(db),
		redisdb.NewDedupChecker(rdb),
		logger.Component("movements"),
	)
	// The dispatcher outlives the signal context: requests drained during
	// shutdown still enqueue movements, and those must reach the store.
	dispatcher := queue.NewDispatcher(0, movementService, logger.Component("dispatcher"))
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher.Start(workerCtx)

	e := api.NewRouter(cfg, api.Deps{
		DB:        db,
		Redis:     rdb,
		Inventory: inventory,
		Team:      team,
		Enqueuer:  dispatcher,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := srv.Shutdown(shutdownCtx)

	// Flush whatever the drained requests enqueued before the Mongo and
	// Redis handles go away.
	dispatcher.Stop()
	stopWorkers()

	if shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewOrderRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewMovementRepository(db).EnsureIndexes(ctx)
}
