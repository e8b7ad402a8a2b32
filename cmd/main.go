package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aims-store/order-service/docs"
	"github.com/aims-store/order-service/internal/app"
	"github.com/aims-store/order-service/internal/config"
	"github.com/aims-store/order-service/internal/events"
	"github.com/aims-store/order-service/internal/handler"
	"github.com/aims-store/order-service/internal/postgres"
	"github.com/aims-store/order-service/internal/repo"
	"github.com/aims-store/order-service/internal/service"
	"github.com/aims-store/order-service/pkg/cache"
	"github.com/aims-store/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           AIMS Order Service API
// @version         1.0
// @description     Storefront checkout, order tracking and cancellation API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	snapshots := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	checkoutService := service.NewCheckoutService(logger, txManager, orderRepo, publisher)
	trackingService := service.NewTrackingService(logger, txManager, orderRepo, snapshots, publisher)

	httpHandler := handler.NewHTTPHandler(logger, checkoutService, trackingService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(snapshots, cacheWarmUpAdapter{svc: trackingService, count: conf.Cache.Capacity})
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
