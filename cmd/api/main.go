package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/smlogitech/backoffice/api/routes"
	"github.com/smlogitech/backoffice/internal/arrivals"
	"github.com/smlogitech/backoffice/internal/changelog"
	"github.com/smlogitech/backoffice/internal/masterdata"
	"github.com/smlogitech/backoffice/internal/orders"
	"github.com/smlogitech/backoffice/internal/reports"
	"github.com/smlogitech/backoffice/internal/settlement"
	"github.com/smlogitech/backoffice/internal/uploads"
	"github.com/smlogitech/backoffice/pkg/config"
	"github.com/smlogitech/backoffice/pkg/db"
	"github.com/smlogitech/backoffice/pkg/logger"
	"github.com/smlogitech/backoffice/pkg/metrics"
	"github.com/smlogitech/backoffice/pkg/migrate"
	"github.com/smlogitech/backoffice/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	masterRepo := masterdata.NewRepository(dbClient.DB())
	cache := masterdata.NewCache(masterRepo)
	if err := cache.Warm(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to warm master data cache", err)
		os.Exit(1)
	}

	orderSvc, err := orders.NewService(orders.ServiceParams{
		Repo:    orders.NewRepository(dbClient.DB()),
		Journal: changelog.NewRepository(dbClient.DB()),
		Master:  masterRepo,
		Cache:   cache,
		Tx:      dbClient,
		Classifier: settlement.Classifier{
			EvidencePrefix: cfg.Evidence.PublicPrefix,
			GraceDays:      cfg.Settlement.OverdueGraceDays,
		},
		Mutations: metrics.NewMutationMetrics(registry),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	uploadSvc, err := uploads.NewService(orderSvc, cfg.Evidence)
	if err != nil {
		logg.Error(context.Background(), "failed to create evidence upload service", err)
		os.Exit(1)
	}

	reportSvc, err := reports.NewService(orderSvc)
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}

	masterSvc, err := masterdata.NewService(masterRepo, cache)
	if err != nil {
		logg.Error(context.Background(), "failed to create master data service", err)
		os.Exit(1)
	}

	arrivalSvc, err := arrivals.NewService(arrivals.NewRepository(dbClient.DB()), nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create arrivals service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, registry, routes.Services{
			Orders:   orderSvc,
			Uploads:  uploadSvc,
			Reports:  reportSvc,
			Master:   masterSvc,
			Arrivals: arrivalSvc,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
