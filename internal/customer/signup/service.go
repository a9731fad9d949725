package signup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/link"
	"onboarding/internal/customer/metrics"
	"onboarding/internal/customer/models"
	"onboarding/internal/customer/risk"
	"onboarding/pkg/requestcontext"
)

const tracerName = "onboarding/internal/customer/signup"

// ComputeExpiry returns the verification link expiry for a signup at now:
// one calendar day later.
func ComputeExpiry(now time.Time) time.Time {
	return now.AddDate(0, 0, 1)
}

// Service runs the signup pipeline over the validation core.
type Service struct {
	risk      RiskModelProvider
	links     LinkIssuer
	publisher EventPublisher
	score     func(domain.Customer, models.RiskModel) models.RiskScore
	clock     Clock
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the request-scoped clock.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithScorer overrides risk.Score.
func WithScorer(score func(domain.Customer, models.RiskModel) models.RiskScore) Option {
	return func(s *Service) {
		s.score = score
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates the signup service.
func New(riskProvider RiskModelProvider, links LinkIssuer, publisher EventPublisher, opts ...Option) *Service {
	s := &Service{
		risk:      riskProvider,
		links:     links,
		publisher: publisher,
		score:     risk.Score,
		clock:     requestcontext.Now,
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup validates req and, on success, scores the customer, issues a
// verification link and publishes the signup event.
//
// Steps run strictly in order and the first failure is returned as is.
// Nothing external happens before the publish step, so abandoning the
// context earlier leaves no trace.
func (s *Service) Signup(ctx context.Context, req domain.CreateCustomerRequest) (*models.EventMetaInformation, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "signup.Signup")
	defer span.End()

	event, err := s.signup(ctx, req)
	s.metrics.ObserveSignupLatency(time.Since(start))
	s.metrics.IncrementOutcome(outcomeOf(err))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logFailure(ctx, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("signup.partition_key", event.PartitionKey.String()),
		attribute.String("signup.risk_score", string(event.Payload.RiskScore)),
	)
	s.logger.InfoContext(ctx, "customer signed up",
		"request_id", requestcontext.RequestID(ctx),
		"partition_key", event.PartitionKey.String(),
		"risk_score", event.Payload.RiskScore,
		"contact_kind", event.Payload.Customer.ContactInfo().Kind(),
	)
	return event, nil
}

func (s *Service) signup(ctx context.Context, req domain.CreateCustomerRequest) (*models.EventMetaInformation, error) {
	now := s.clock(ctx)

	customer, err := domain.BuildCustomer(req, now)
	if err != nil {
		return nil, err
	}
	expiry := ComputeExpiry(now)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	model, err := s.fetchRiskModel(ctx)
	if err != nil {
		return nil, err
	}

	score := s.score(customer, model)
	s.metrics.IncrementRiskScore(string(score))

	verification, err := s.links.Issue(customer, expiry)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.publish(ctx, customer, score, verification)
}

func (s *Service) fetchRiskModel(ctx context.Context) (models.RiskModel, error) {
	ctx, span := s.tracer.Start(ctx, "signup.FetchRiskModel")
	defer span.End()

	start := time.Now()
	model, err := s.risk.Fetch(ctx)
	s.metrics.ObserveStepLatency("risk_model", time.Since(start))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return models.RiskModel{}, err
	}
	span.SetAttributes(attribute.String("risk.model_version", model.Version))
	return model, nil
}

func (s *Service) publish(ctx context.Context, customer domain.Customer, score models.RiskScore, verification models.VerificationLink) (*models.EventMetaInformation, error) {
	ctx, span := s.tracer.Start(ctx, "signup.PublishEvent")
	defer span.End()

	start := time.Now()
	event, err := s.publisher.Publish(ctx, customer, score, verification)
	s.metrics.ObserveStepLatency("publish", time.Since(start))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return event, nil
}

// VerifyLink checks a verification link token against the request clock.
func (s *Service) VerifyLink(ctx context.Context, token string) (*link.Claims, error) {
	return s.links.Verify(token, s.clock(ctx))
}

func (s *Service) logFailure(ctx context.Context, err error) {
	if kind, ok := domain.KindOf(err); ok {
		s.logger.InfoContext(ctx, "signup rejected",
			"request_id", requestcontext.RequestID(ctx),
			"reason", kind,
		)
		return
	}
	s.logger.ErrorContext(ctx, "signup failed",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	if kind, ok := domain.KindOf(err); ok {
		return string(kind)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return "collaborator_error"
}
