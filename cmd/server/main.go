package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/steelisia/commerce-backend/internal/b2b"
	"github.com/steelisia/commerce-backend/internal/checkout"
	sagasqlite "github.com/steelisia/commerce-backend/internal/checkout/sagalog/sqlite"
	"github.com/steelisia/commerce-backend/internal/config"
	"github.com/steelisia/commerce-backend/internal/httpx"
	"github.com/steelisia/commerce-backend/internal/order"
	"github.com/steelisia/commerce-backend/internal/payment"
	"github.com/steelisia/commerce-backend/internal/pkg/cache"
	"github.com/steelisia/commerce-backend/internal/pkg/telemetry"
	"github.com/steelisia/commerce-backend/internal/pricing"
	storage "github.com/steelisia/commerce-backend/internal/storage/mongo"
	"github.com/steelisia/commerce-backend/internal/user"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.Environment)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	db, err := storage.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		slog.Error("failed to connect to mongo", "uri", cfg.MongoURI, "error", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(disconnectCtx); err != nil {
			slog.Error("mongo disconnect error", "error", err)
		}
	}()

	if err := os.MkdirAll(filepath.Dir(cfg.CheckoutLogPath), 0o755); err != nil {
		slog.Error("failed to create checkout log directory", "error", err)
		os.Exit(1)
	}
	checkoutLog, err := sagasqlite.Open(cfg.CheckoutLogPath)
	if err != nil {
		slog.Error("failed to open checkout log", "path", cfg.CheckoutLogPath, "error", err)
		os.Exit(1)
	}
	defer checkoutLog.Close()

	catalogRepo := storage.NewCatalogRepository(db)
	orderRepo := storage.NewOrderRepository(db)
	userRepo := storage.NewUserRepository(db)
	b2bRepo := storage.NewB2BRepository(db)

	orders := order.NewService(orderRepo, pricing.NewEngine(catalogRepo))
	gateway := payment.NewClient(cfg.Payment)
	initiator := payment.NewInitiator(gateway, cfg.Payment)
	co := checkout.New(orderRepo, initiator, checkoutLog)
	users := user.NewService(userRepo)
	b2bSvc := b2b.NewService(b2bRepo, catalogRepo)

	idempotency := cache.NewRedisCache(cfg.RedisAddr, cfg.ServiceName)

	handler := httpx.NewHandler(orders, co, users, b2bSvc, catalogRepo, idempotency)
	router := otelhttp.NewHandler(httpx.NewRouter(handler), "http.server")

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("commerce backend running", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
}
