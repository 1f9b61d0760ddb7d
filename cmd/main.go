package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/dairy-service/internal/app"
	"github.com/SergeyBogomolovv/dairy-service/internal/config"
	"github.com/SergeyBogomolovv/dairy-service/internal/events"
	"github.com/SergeyBogomolovv/dairy-service/internal/handler"
	"github.com/SergeyBogomolovv/dairy-service/internal/middleware"
	"github.com/SergeyBogomolovv/dairy-service/internal/postgres"
	"github.com/SergeyBogomolovv/dairy-service/internal/repo"
	"github.com/SergeyBogomolovv/dairy-service/internal/service"
	"github.com/SergeyBogomolovv/dairy-service/pkg/cache"
	"github.com/SergeyBogomolovv/dairy-service/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, store, store, orderCache, publisher)
	authService := service.NewAuthService(logger, store, store, conf.Auth.SessionTTL)
	catalogService := service.NewCatalogService(logger, store, store)
	reportService := service.NewReportService(logger, store)

	authMW := middleware.Auth(logger, authService)

	authHandler := handler.NewAuthHandler(logger, authService)
	orderHandler := handler.NewOrderHandler(logger, orderService, catalogService, authMW)
	adminHandler := handler.NewAdminHandler(logger, catalogService, orderService, authService, reportService, authMW)

	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(authHandler, orderHandler, adminHandler)
	app.SetStarters(orderCache)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to ensure admin user", authService.EnsureAdmin(ctx, conf.Admin.Username, conf.Admin.Email, conf.Admin.Password))
	panicIfErr("failed to seed catalog", catalogService.Seed(ctx))

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
