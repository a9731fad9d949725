package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/twmb/franz-go/pkg/kgo"

	"onboarding/internal/customer/handler"
	"onboarding/internal/customer/link"
	customermetrics "onboarding/internal/customer/metrics"
	"onboarding/internal/customer/outbox/memory"
	outboxpg "onboarding/internal/customer/outbox/postgres"
	"onboarding/internal/customer/publisher"
	"onboarding/internal/customer/relay"
	"onboarding/internal/customer/risk"
	"onboarding/internal/customer/signup"
	"onboarding/internal/platform/config"
	"onboarding/internal/platform/kafka"
	platformmetrics "onboarding/internal/platform/metrics"
	"onboarding/internal/platform/postgres"
	platformredis "onboarding/internal/platform/redis"
	"onboarding/pkg/platform/httputil"
)

type healthCheck func(ctx context.Context) error

type app struct {
	router       http.Handler
	relay        *relay.Worker
	memoryOutbox *memory.InMemoryStore
	closers      []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// build assembles the service for the configured publisher mode and risk source.
func build(ctx context.Context, cfg config.Server, log *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	reg := platformmetrics.NewRegistry()
	httpMetrics := platformmetrics.New(reg)
	customerMetrics := customermetrics.New(reg)
	checks := map[string]healthCheck{}

	issuer, err := link.NewIssuer(cfg.Link.SigningKey, cfg.Link.Issuer, cfg.Link.BaseURL)
	if err != nil {
		return nil, err
	}

	var (
		riskProvider signup.RiskModelProvider = risk.NewStaticProvider(risk.DefaultModel())
		riskAdmin    handler.RiskModelStore
	)
	if cfg.RiskSource == config.RiskRedis {
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		checks["redis"] = client.Health

		redisProvider := risk.NewRedisProvider(client, risk.NewStaticProvider(risk.DefaultModel()),
			risk.WithKey(cfg.Redis.RiskModelKey),
			risk.WithLogger(log),
		)
		riskProvider = redisProvider
		riskAdmin = redisProvider
	}

	pub, err := a.buildPublisher(ctx, cfg, log, customerMetrics, checks)
	if err != nil {
		return nil, err
	}

	service := signup.New(riskProvider, issuer, pub,
		signup.WithLogger(log),
		signup.WithMetrics(customerMetrics),
	)

	opts := []handler.Option{handler.WithTimeout(cfg.RequestTimeout)}
	if riskAdmin != nil && cfg.AdminTokenHash != "" {
		opts = append(opts, handler.WithRiskModelAdmin(riskAdmin, cfg.AdminTokenHash))
	}

	r := chi.NewRouter()
	r.Get("/health", healthHandler(checks))
	r.Handle("/metrics", platformmetrics.Handler(reg))
	handler.New(service, log, httpMetrics, opts...).Register(r)
	a.router = r
	return a, nil
}

func (a *app) buildPublisher(ctx context.Context, cfg config.Server, log *slog.Logger, m *customermetrics.Metrics, checks map[string]healthCheck) (signup.EventPublisher, error) {
	switch cfg.Publisher {
	case config.PublisherKafka:
		client, err := a.kafkaClient(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		checks["kafka"] = client.Ping
		return publisher.NewKafkaPublisher(client, cfg.Kafka.Topic, publisher.WithLogger(log)), nil

	case config.PublisherOutbox:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		checks["postgres"] = db.PingContext

		store := outboxpg.New(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		client, err := a.kafkaClient(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		a.relay = newRelay(store, client, cfg, log, m, relay.WithDB(db))
		return publisher.NewOutboxPublisher(store, publisher.WithLogger(log)), nil

	case config.PublisherMemory:
		if len(cfg.Kafka.Brokers) == 0 {
			// Nothing drains the store, so only the latest events are kept.
			a.memoryOutbox = memory.NewInMemoryStore(memory.WithCapacity(cfg.MemoryOutboxCapacity))
			return publisher.NewOutboxPublisher(a.memoryOutbox, publisher.WithLogger(log)), nil
		}
		a.memoryOutbox = memory.NewInMemoryStore()
		client, err := a.kafkaClient(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		a.relay = newRelay(a.memoryOutbox, client, cfg, log, m)
		return publisher.NewOutboxPublisher(a.memoryOutbox, publisher.WithLogger(log)), nil
	}
	return nil, fmt.Errorf("%w: unknown publisher mode %q", config.ErrInvalidConfig, cfg.Publisher)
}

func (a *app) kafkaClient(ctx context.Context, cfg config.Server, log *slog.Logger) (*kgo.Client, error) {
	client, err := kafka.NewClient(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)
	if err := kafka.EnsureTopic(ctx, client, cfg.Kafka, log); err != nil {
		return nil, err
	}
	return client, nil
}

func newRelay(store relay.Store, producer publisher.Producer, cfg config.Server, log *slog.Logger, m *customermetrics.Metrics, opts ...relay.Option) *relay.Worker {
	base := []relay.Option{
		relay.WithInterval(cfg.Relay.Interval),
		relay.WithBatchSize(cfg.Relay.BatchSize),
		relay.WithRetry(cfg.Relay.Attempts, cfg.Relay.RetryDelay),
		relay.WithLogger(log),
		relay.WithMetrics(m),
	}
	return relay.New(store, producer, cfg.Kafka.Topic, append(base, opts...)...)
}

func healthHandler(checks map[string]healthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{}
		var failed error
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				status[name] = "down"
				failed = errors.Join(failed, err)
				continue
			}
			status[name] = "up"
		}
		if failed != nil {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "degraded", "checks": status})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok", "checks": status})
	}
}
