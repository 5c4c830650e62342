package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/app"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/backend"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/config"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/events"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/gateway"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/handler"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/postgres"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/repo"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/service"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/cache"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/lock"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/signature"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/trm"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/utils"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

// @title           Fee Payment Service API
// @version         1.0
// @description     Документация HTTP API
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	attemptRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	attemptCache := cache.NewLRUCache[entities.Attempt](conf.Cache.Capacity, conf.Cache.TTL)

	backendClient := backend.NewClient(conf.Backend.BaseURL, conf.Backend.Timeout)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)
	closers := []io.Closer{publisher}

	var locker service.Locker = lock.NewMemory()
	if conf.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		panicIfErr("failed to connect to redis", rdb.Ping(context.Background()).Err())
		logger.Info("redis connected")
		locker = lock.NewRedis(rdb, conf.Redis.LockTTL)
		closers = append(closers, rdb)
	}

	paymentService := service.NewPaymentService(
		logger,
		txManager,
		backendClient,
		signature.HMAC{},
		attemptRepo,
		attemptCache,
		publisher,
		locker,
		service.VerifyConfig{
			ServiceToken: conf.Backend.ServiceToken,
			Retry: utils.RetryConfig{
				MaxAttempts:  conf.Backend.VerifyAttempts,
				InitialDelay: conf.Backend.VerifyInitialDelay,
				Multiplier:   2,
			},
		},
	)

	endpoint := conf.Esewa.GatewayURL()
	forms := gateway.NewFormBuilder(gateway.FormConfig{Endpoint: endpoint, PublicURL: conf.App.PublicURL})
	httpHandler := handler.NewHTTPHandler(logger, paymentService, forms, gateway.NewSubmitter(endpoint), conf.App.DashboardURL)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(attemptCache, cacheWarmUpAdapter{svc: paymentService, count: conf.Cache.Capacity})
	app.SetClosers(closers...)

	logger.Info("payment gateway configured", slog.String("environment", conf.Esewa.Environment), slog.String("endpoint", endpoint))

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
