package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"veripay/internal/audit"
	"veripay/internal/auth"
	"veripay/internal/compliance/gateway"
	"veripay/internal/compliance/handler"
	complianceMetrics "veripay/internal/compliance/metrics"
	"veripay/internal/compliance/service"
	"veripay/internal/compliance/snapshot"
	"veripay/internal/compliance/tracker"
	"veripay/internal/notify"
	"veripay/internal/platform/config"
	"veripay/internal/platform/httpserver"
	"veripay/internal/platform/logger"
	"veripay/internal/platform/metrics"
	platformpg "veripay/internal/platform/postgres"
	platformredis "veripay/internal/platform/redis"
	httptransport "veripay/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Storage. Without DATABASE_URL everything runs in memory, which is
	// enough for local development.
	db, err := platformpg.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	var (
		trackerStore  tracker.Store
		snapshotStore snapshot.Store
		auditStore    audit.Store
	)
	if db != nil {
		defer db.Close()
		if err := platformpg.ApplySchema(ctx, db); err != nil {
			return err
		}
		trackerStore = tracker.NewPostgresStore(db)
		snapshotStore = snapshot.NewPostgresStore(db)
		auditStore = audit.NewPostgresStore(db)
		log.Info("using postgres storage")
	} else {
		trackerStore = tracker.NewInMemoryStore()
		snapshotStore = snapshot.NewInMemoryStore()
		auditStore = audit.NewInMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory storage")
	}

	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Notifications. Without brokers the sink is in-memory and messages are
	// effectively dropped after the process exits.
	var sink notify.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := notify.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return err
		}
		defer kafkaSink.Close()
		sink = kafkaSink
	} else {
		sink = notify.NewMemorySink()
		log.Warn("KAFKA_BROKERS not set, notifications stay in memory")
	}
	notifier := notify.NewNotifier(sink, 256, log)
	go func() {
		if err := notifier.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("notifier stopped", "error", err)
		}
	}()

	// Gateway to the payment processor, with a Redis requirements cache when
	// available.
	var gw gateway.Gateway = gateway.NewClient(cfg.ProcessorBaseURL, cfg.ProcessorAPIKey, cfg.GatewayTimeout)
	if redisClient != nil {
		gw = gateway.NewCachedGateway(gw, redisClient.Client, cfg.RequirementsCacheTTL, log)
	}

	auditor := audit.NewPublisher(auditStore)
	compMetrics := complianceMetrics.New()

	trackerSvc, err := tracker.NewService(trackerStore, auditor, compMetrics)
	if err != nil {
		return err
	}
	snapshotSvc, err := snapshot.NewService(snapshotStore)
	if err != nil {
		return err
	}
	orchestrator, err := service.NewService(gw, trackerSvc, snapshotSvc, auditor, log,
		service.WithGatewayTimeout(cfg.GatewayTimeout),
		service.WithNotifier(notifier),
		service.WithMetrics(compMetrics),
		service.WithReturnURL(cfg.VerificationReturnURL),
	)
	if err != nil {
		return err
	}

	tokens := auth.NewTokenService(cfg.JWTSigningKey, "veripay", "veripay-api")
	complianceHandler := handler.New(orchestrator, tokens, log)
	router := httptransport.NewRouter(complianceHandler, log, metrics.New())

	srv := httpserver.New(cfg.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting veripay", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
