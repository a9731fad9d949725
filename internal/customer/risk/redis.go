package risk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"onboarding/internal/customer/models"
	"onboarding/pkg/platform/circuit"
	"onboarding/pkg/platform/sentinel"
)

// DefaultModelKey is the Redis key holding the current risk model as JSON.
const DefaultModelKey = "risk:model:current"

// ErrBadModel indicates a model submitted to Store that carries unknown scores.
var ErrBadModel = errors.New("risk model is malformed")

// Client is the subset of go-redis used by RedisProvider.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Fallback is consulted when no model is stored or the breaker is open.
type Fallback interface {
	Fetch(ctx context.Context) (models.RiskModel, error)
}

// RedisProvider reads the current risk model from Redis.
//
// A missing key falls back immediately. Redis errors are returned to the
// caller until the breaker opens; while open, the fallback model is served
// and Redis keeps being probed so that recovery closes the breaker.
type RedisProvider struct {
	client   Client
	key      string
	fallback Fallback
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

// RedisOption configures a RedisProvider.
type RedisOption func(*RedisProvider)

// WithKey overrides DefaultModelKey.
func WithKey(key string) RedisOption {
	return func(p *RedisProvider) {
		p.key = key
	}
}

// WithBreaker sets the circuit breaker guarding Redis.
func WithBreaker(b *circuit.Breaker) RedisOption {
	return func(p *RedisProvider) {
		p.breaker = b
	}
}

// WithLogger sets a logger for breaker transitions.
func WithLogger(logger *slog.Logger) RedisOption {
	return func(p *RedisProvider) {
		p.logger = logger
	}
}

// NewRedisProvider creates a provider reading from client.
func NewRedisProvider(client Client, fallback Fallback, opts ...RedisOption) *RedisProvider {
	p := &RedisProvider{
		client:   client,
		key:      DefaultModelKey,
		fallback: fallback,
		breaker:  circuit.New("risk-model-redis", circuit.WithFailureThreshold(3)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fetch returns the stored model, or the fallback model when none is stored.
//
// A stored value that does not decode counts as a backend failure like a
// Redis error: it feeds the breaker and surfaces as ErrUnavailable.
// ErrBadModel is reserved for models rejected by Store.
func (p *RedisProvider) Fetch(ctx context.Context) (models.RiskModel, error) {
	raw, err := p.client.Get(ctx, p.key).Bytes()
	if errors.Is(err, redis.Nil) {
		p.breaker.RecordSuccess()
		return p.fallback.Fetch(ctx)
	}
	if err != nil {
		return p.failed(ctx, fmt.Errorf("get risk model %q: %w: %v", p.key, sentinel.ErrUnavailable, err))
	}

	var model models.RiskModel
	if err := json.Unmarshal(raw, &model); err != nil {
		return p.failed(ctx, fmt.Errorf("decode risk model %q: %w: %v", p.key, sentinel.ErrUnavailable, err))
	}

	usePrimary, change := p.breaker.RecordSuccess()
	if change.Closed && p.logger != nil {
		p.logger.InfoContext(ctx, "risk model breaker closed", "breaker", p.breaker.Name())
	}
	if !usePrimary {
		return p.fallback.Fetch(ctx)
	}
	return model, nil
}

func (p *RedisProvider) failed(ctx context.Context, err error) (models.RiskModel, error) {
	useFallback, change := p.breaker.RecordFailure()
	if change.Opened && p.logger != nil {
		p.logger.WarnContext(ctx, "risk model breaker opened, serving fallback model",
			"breaker", p.breaker.Name(),
			"error", err,
		)
	}
	if useFallback {
		return p.fallback.Fetch(ctx)
	}
	return models.RiskModel{}, err
}

// Store saves model as the current risk model.
func (p *RedisProvider) Store(ctx context.Context, model models.RiskModel) error {
	if err := Validate(model); err != nil {
		return err
	}
	raw, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("encode risk model: %w", err)
	}
	if err := p.client.Set(ctx, p.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("set risk model %q: %w: %v", p.key, sentinel.ErrUnavailable, err)
	}
	return nil
}
