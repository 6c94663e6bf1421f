package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bintangpramudya/kasirpay-backend/api/controllers"
	"github.com/bintangpramudya/kasirpay-backend/api/routes"
	internalauth "github.com/bintangpramudya/kasirpay-backend/internal/auth"
	"github.com/bintangpramudya/kasirpay-backend/internal/items"
	"github.com/bintangpramudya/kasirpay-backend/internal/samples"
	"github.com/bintangpramudya/kasirpay-backend/internal/transactions"
	"github.com/bintangpramudya/kasirpay-backend/internal/users"
	webhookmidtrans "github.com/bintangpramudya/kasirpay-backend/internal/webhooks/midtrans"
	"github.com/bintangpramudya/kasirpay-backend/pkg/config"
	"github.com/bintangpramudya/kasirpay-backend/pkg/db"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/bintangpramudya/kasirpay-backend/pkg/mail"
	"github.com/bintangpramudya/kasirpay-backend/pkg/metrics"
	"github.com/bintangpramudya/kasirpay-backend/pkg/midtrans"
	"github.com/bintangpramudya/kasirpay-backend/pkg/migrate"
	"github.com/bintangpramudya/kasirpay-backend/pkg/redis"
	"github.com/bintangpramudya/kasirpay-backend/pkg/storage/gcs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{ServiceName: "kasirpay-api"}).
			Error(context.Background(), "config load failed", err)
		os.Exit(1)
	}

	logg := logger.New(logger.Options{
		ServiceName: "kasirpay-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(ctx, "api exited with error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() { _ = dbClient.Close() }()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	gcsClient, err := gcs.NewClient(ctx, cfg.GCS, cfg.GCP, logg)
	if err != nil {
		return err
	}
	defer func() { _ = gcsClient.Close() }()

	mailClient := mail.New(cfg.Mail, logg)

	snapClient, err := midtrans.NewClient(ctx, cfg.Midtrans, logg)
	if err != nil {
		return err
	}

	userRepo := users.NewRepository(dbClient.DB())
	sampleRepo := samples.NewRepository(dbClient.DB())
	itemRepo := items.NewRepository(dbClient.DB())
	txnRepo := transactions.NewRepository(dbClient)

	authService, err := internalauth.NewService(internalauth.ServiceParams{
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return err
	}

	sampleService, err := samples.NewService(samples.ServiceParams{
		Repo:     sampleRepo,
		Uploader: gcsClient,
		Mailer:   mailClient,
		NotifyTo: cfg.Mail.Sender(),
		Logger:   logg,
	})
	if err != nil {
		return err
	}

	itemService, err := items.NewService(itemRepo)
	if err != nil {
		return err
	}

	txnService, err := transactions.NewService(transactions.ServiceParams{
		Repo:    txnRepo,
		Items:   itemRepo,
		Gateway: snapClient,
		Logger:  logg,
	})
	if err != nil {
		return err
	}

	webhookService, err := webhookmidtrans.NewService(webhookmidtrans.ServiceParams{
		Verifier: snapClient,
		Store:    txnRepo,
		Mailer:   mailClient,
		Logger:   logg,
	})
	if err != nil {
		return err
	}

	httpMetrics := metrics.NewHTTPMetrics()

	router := routes.New(cfg, logg, httpMetrics, redisClient, routes.Controllers{
		Health:       controllers.NewHealthController(dbClient, redisClient, logg),
		Auth:         controllers.NewAuthController(authService, logg),
		Samples:      controllers.NewSamplesController(sampleService, cfg.Upload.MaxUploadMB, logg),
		Items:        controllers.NewItemsController(itemService, logg),
		Transactions: controllers.NewTransactionsController(txnService, logg),
		Webhooks:     controllers.NewWebhooksController(webhookService, logg),
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(ctx, "api listening on "+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
