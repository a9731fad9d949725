package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the signup pipeline.
type Metrics struct {
	// Signup results by outcome: "ok", a validation error kind, or "collaborator_error"
	SignupOutcome *prometheus.CounterVec

	// Collaborator call latencies by step
	StepLatency *prometheus.HistogramVec

	// Assigned risk scores
	RiskScores *prometheus.CounterVec

	// Overall pipeline latency
	SignupLatency prometheus.Histogram

	// Outbox relay
	RelayedEvents prometheus.Counter
	RelayFailures prometheus.Counter
}

// New creates the signup metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SignupOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_signup_outcomes_total",
			Help: "Total signup attempts by outcome",
		}, []string{"outcome"}),

		StepLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onboarding_signup_step_duration_seconds",
			Help:    "Duration of signup pipeline collaborator calls by step",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"step"}), // step: "risk_model", "publish"

		RiskScores: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_risk_scores_total",
			Help: "Risk scores assigned to new customers",
		}, []string{"score"}),

		SignupLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "onboarding_signup_duration_seconds",
			Help:    "Duration of the full signup pipeline",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		RelayedEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_outbox_relayed_total",
			Help: "Outbox entries published to Kafka",
		}),

		RelayFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_outbox_relay_failures_total",
			Help: "Outbox relay batches that failed after retries",
		}),
	}
}

// IncrementOutcome records a signup outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.SignupOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveStepLatency records the duration of a collaborator call.
func (m *Metrics) ObserveStepLatency(step string, d time.Duration) {
	if m != nil {
		m.StepLatency.WithLabelValues(step).Observe(d.Seconds())
	}
}

// IncrementRiskScore records an assigned score.
func (m *Metrics) IncrementRiskScore(score string) {
	if m != nil {
		m.RiskScores.WithLabelValues(score).Inc()
	}
}

// ObserveSignupLatency records the total pipeline duration.
func (m *Metrics) ObserveSignupLatency(d time.Duration) {
	if m != nil {
		m.SignupLatency.Observe(d.Seconds())
	}
}

// AddRelayed records entries published by the relay.
func (m *Metrics) AddRelayed(n int) {
	if m != nil {
		m.RelayedEvents.Add(float64(n))
	}
}

// IncrementRelayFailures records a failed relay batch.
func (m *Metrics) IncrementRelayFailures() {
	if m != nil {
		m.RelayFailures.Inc()
	}
}
