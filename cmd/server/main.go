package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"cardwise/internal/advisory"
	advisorymetrics "cardwise/internal/advisory/metrics"
	"cardwise/internal/cards"
	cardsmetrics "cardwise/internal/cards/metrics"
	kafkanotifier "cardwise/internal/notifier/kafka"
	"cardwise/internal/notifier/local"
	"cardwise/internal/platform/config"
	"cardwise/internal/platform/httpserver"
	"cardwise/internal/platform/logger"
	"cardwise/internal/platform/metrics"
	redisclient "cardwise/internal/platform/redis"
	"cardwise/internal/recommend"
	recommendmetrics "cardwise/internal/recommend/metrics"
	"cardwise/internal/secrets"
	"cardwise/internal/storage"
	httptransport "cardwise/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// resources collects everything that must be closed on shutdown.
type resources struct {
	closers []func()
}

func (r *resources) add(fn func()) { r.closers = append(r.closers, fn) }

func (r *resources) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	res := &resources{}
	defer res.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	kv, err := buildKVStore(ctx, cfg, log, res)
	if err != nil {
		return err
	}

	secretStore, err := buildSecrets(ctx, cfg, kv, log, res)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	notifier, err := buildNotifier(gctx, cfg, log, res, g)
	if err != nil {
		return err
	}

	advisor, err := advisory.New(notifier, kv,
		advisory.WithLogger(log),
		advisory.WithMetrics(advisorymetrics.New(reg)),
		advisory.WithCooldown(cfg.SuggestionCooldown),
		advisory.WithTriggerDelay(cfg.SuggestionTriggerDelay),
	)
	if err != nil {
		return fmt.Errorf("init advisory: %w", err)
	}

	provider := cards.NewMockProvider(
		cards.WithLogger(log),
		cards.WithMetrics(cardsmetrics.New(reg)),
		cards.WithArtTimeout(cfg.ArtValidationTimeout),
		cards.WithArtConcurrency(cfg.ArtValidationConcurrency),
	)
	recommender := recommend.New(
		recommend.WithLogger(log),
		recommend.WithMetrics(recommendmetrics.New(reg)),
	)

	router := httptransport.NewRouter(log, metrics.New(reg), reg,
		httptransport.NewCardsHandler(provider, log),
		httptransport.NewRecommendationHandler(provider, recommender, log),
		httptransport.NewAdvisoryHandler(advisor, log),
		httptransport.NewSecretsHandler(secretStore, log),
	)
	srv := httpserver.New(cfg.Addr, router, httpserver.WithErrorLog(log))

	g.Go(func() error {
		log.Info("starting cardwise",
			"addr", cfg.Addr,
			"kv_backend", cfg.KVBackend,
			"secrets_backend", cfg.SecretsBackend,
			"notifier", cfg.Notifier,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func buildKVStore(ctx context.Context, cfg config.Server, log *slog.Logger, res *resources) (storage.Store, error) {
	switch cfg.KVBackend {
	case config.BackendRedis:
		client, err := redisclient.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		res.add(func() { _ = client.Close() })
		return storage.NewRedis(client.Client), nil
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		res.add(pool.Close)
		store := storage.NewPostgres(pool)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		log.Warn("using in-memory key-value store; cooldowns and audit entries are lost on restart")
		return storage.NewInMemoryStore(), nil
	}
}

func buildSecrets(ctx context.Context, cfg config.Server, kv storage.Store, log *slog.Logger, res *resources) (*secrets.Service, error) {
	masterKey := cfg.SecretsMasterKey
	if masterKey == "" {
		generated, err := secrets.Generate()
		if err != nil {
			return nil, err
		}
		masterKey = generated
		log.Warn("SECRETS_MASTER_KEY not set; using an ephemeral key, stored secrets will not survive restart")
	}
	sealer, err := secrets.NewSealer(masterKey)
	if err != nil {
		return nil, err
	}

	var backend secrets.Backend
	switch cfg.SecretsBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open secrets database: %w", err)
		}
		res.add(func() { _ = db.Close() })
		pg := secrets.NewPostgresBackend(db)
		if err := pg.Migrate(ctx); err != nil {
			return nil, err
		}
		backend = pg
	default:
		backend = secrets.NewKVBackend(kv)
	}
	return secrets.New(backend, sealer, secrets.WithLogger(log))
}

func buildNotifier(ctx context.Context, cfg config.Server, log *slog.Logger, res *resources, g *errgroup.Group) (advisory.Notifier, error) {
	if cfg.Notifier == config.NotifierKafka {
		n, err := kafkanotifier.New(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, fmt.Errorf("init kafka notifier: %w", err)
		}
		res.add(n.Close)
		if err := n.Ping(ctx); err != nil {
			log.Warn("kafka brokers unreachable at startup", "error", err)
		}
		return n, nil
	}

	n := local.New(cfg.NotifyGranted)
	worker := local.NewWorker(n, local.LogPresenter(log))
	g.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	return n, nil
}
