package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/sync/errgroup"

	"chronicle/internal/changelog/handler"
	"chronicle/internal/changelog/i18n"
	"chronicle/internal/changelog/narrate"
	"chronicle/internal/changelog/pipeline"
	"chronicle/internal/changelog/publish"
	"chronicle/internal/changelog/snapshot"
	"chronicle/internal/changelog/store"
	"chronicle/internal/platform/config"
	"chronicle/internal/platform/httpserver"
	"chronicle/internal/platform/logger"
	"chronicle/internal/platform/metrics"
	"chronicle/internal/platform/middleware"
	"chronicle/internal/platform/postgres"
	"chronicle/internal/platform/redis"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// The pipeline itself lives in internal/changelog.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		log.Error("postgres connect failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	sinks := publish.MultiSink{publish.NewRedisSink(redisClient.Client)}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := kgo.NewClient(
			kgo.SeedBrokers(cfg.Kafka.Brokers...),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			log.Error("kafka connect failed", "error", err)
			os.Exit(1)
		}
		kafkaSink := publish.NewKafkaSink(kafkaClient)
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
	}

	var look snapshot.Lookup = snapshot.NopLookup{}
	publisher := publish.New(sinks, log,
		publish.WithBatchSize(cfg.Broadcast.BatchSize),
		publish.WithDelay(cfg.Broadcast.Delay),
	)
	pipe := pipeline.New(
		store.NewPostgres(pool),
		narrate.NewEngine(look),
		i18n.NewRenderer(),
		publisher,
		look,
		log,
	)

	tokenValidator := middleware.NewValidator(cfg.JWTSigningKey)
	h := handler.New(pipe, log, tokenValidator)

	router := chi.NewRouter()
	router.Use(middleware.Instrument(metrics.New()))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
			return
		}
		if err := redisClient.Health(r.Context()); err != nil {
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	h.Register(router)

	srv := httpserver.New(cfg.Addr, router)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting chronicle", "addr", cfg.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
