package risk

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/models"
	"onboarding/pkg/platform/circuit"
	"onboarding/pkg/platform/sentinel"
)

type fakeClient struct {
	value  string
	err    error
	gets   int
	stored any
}

func (f *fakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	f.gets++
	return redis.NewStringResult(f.value, f.err)
}

func (f *fakeClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.stored = value
	return redis.NewStatusResult("OK", nil)
}

type RedisProviderSuite struct {
	suite.Suite
	ctx      context.Context
	client   *fakeClient
	fallback *StaticProvider
}

func TestRedisProviderSuite(t *testing.T) {
	suite.Run(t, new(RedisProviderSuite))
}

func (s *RedisProviderSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = &fakeClient{}
	s.fallback = NewStaticProvider(DefaultModel())
}

func (s *RedisProviderSuite) stored(model models.RiskModel) {
	raw, err := json.Marshal(model)
	s.Require().NoError(err)
	s.client.value = string(raw)
}

func (s *RedisProviderSuite) TestFetch() {
	s.Run("returns stored model", func() {
		s.stored(models.RiskModel{Version: "v7", Baseline: models.RiskLow})
		p := NewRedisProvider(s.client, s.fallback)

		model, err := p.Fetch(s.ctx)
		s.Require().NoError(err)
		s.Equal("v7", model.Version)
		s.Equal(models.RiskLow, model.Baseline)
	})

	s.Run("missing key serves fallback", func() {
		s.client.value, s.client.err = "", redis.Nil
		p := NewRedisProvider(s.client, s.fallback)

		model, err := p.Fetch(s.ctx)
		s.Require().NoError(err)
		s.Equal(DefaultModelVersion, model.Version)
	})

	s.Run("corrupt stored model is unavailable", func() {
		s.client.value, s.client.err = "{not json", nil
		p := NewRedisProvider(s.client, s.fallback)

		_, err := p.Fetch(s.ctx)
		s.ErrorIs(err, sentinel.ErrUnavailable)
		s.NotErrorIs(err, ErrBadModel)
	})
}

func (s *RedisProviderSuite) TestCorruptModelOpensBreaker() {
	s.client.value = "{not json"
	breaker := circuit.New("risk-model-redis", circuit.WithFailureThreshold(2))
	p := NewRedisProvider(s.client, s.fallback, WithBreaker(breaker))

	_, err := p.Fetch(s.ctx)
	s.ErrorIs(err, sentinel.ErrUnavailable)

	model, err := p.Fetch(s.ctx)
	s.Require().NoError(err)
	s.Equal(DefaultModelVersion, model.Version)
	s.True(breaker.IsOpen())

	s.stored(models.RiskModel{Version: "v11", Baseline: models.RiskLow})
	model, err = p.Fetch(s.ctx)
	s.Require().NoError(err)
	s.Equal("v11", model.Version)
	s.False(breaker.IsOpen())
}

func (s *RedisProviderSuite) TestBreaker() {
	s.client.err = errors.New("connection refused")
	breaker := circuit.New("risk-model-redis", circuit.WithFailureThreshold(2))
	p := NewRedisProvider(s.client, s.fallback, WithBreaker(breaker))

	_, err := p.Fetch(s.ctx)
	s.ErrorIs(err, sentinel.ErrUnavailable)

	model, err := p.Fetch(s.ctx)
	s.Require().NoError(err, "breaker opens and serves the fallback")
	s.Equal(DefaultModelVersion, model.Version)
	s.True(breaker.IsOpen())

	s.stored(models.RiskModel{Version: "v8", Baseline: models.RiskHigh})
	s.client.err = nil
	model, err = p.Fetch(s.ctx)
	s.Require().NoError(err)
	s.Equal("v8", model.Version, "recovered redis closes the breaker")
	s.False(breaker.IsOpen())
	s.Equal(3, s.client.gets)
}

func (s *RedisProviderSuite) TestStore() {
	p := NewRedisProvider(s.client, s.fallback, WithKey("risk:model:test"))
	err := p.Store(s.ctx, models.RiskModel{Version: "v9"})
	s.Require().NoError(err)
	s.JSONEq(`{"version":"v9","baseline":""}`, string(s.client.stored.([]byte)))
}

func (s *RedisProviderSuite) TestStoreRejectsUnknownScores() {
	p := NewRedisProvider(s.client, s.fallback)

	err := p.Store(s.ctx, models.RiskModel{Version: "v10", Baseline: "SEVERE"})
	s.ErrorIs(err, ErrBadModel)

	err = p.Store(s.ctx, models.RiskModel{
		Version:   "v10",
		ByContact: map[domain.ContactKind]models.RiskScore{domain.ContactEmailOnly: "meh"},
	})
	s.ErrorIs(err, ErrBadModel)
	s.Nil(s.client.stored)
}

func (s *RedisProviderSuite) TestStoreFailureIsUnavailable() {
	s.client.err = errors.New("connection refused")
	p := NewRedisProvider(s.client, s.fallback)

	err := p.Store(s.ctx, DefaultModel())
	s.ErrorIs(err, sentinel.ErrUnavailable)
}
