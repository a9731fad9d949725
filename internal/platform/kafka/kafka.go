package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"onboarding/internal/platform/config"
)

// NewClient creates a producer client for cfg.Brokers. Records are
// partitioned by key hash so one key always maps to one partition.
func NewClient(cfg config.KafkaConfig, opts ...kgo.Opt) (*kgo.Client, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	base := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.RecordPartitioner(kgo.StickyKeyPartitioner(nil)),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}
	client, err := kgo.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return client, nil
}

// EnsureTopic creates the signup topic if it does not exist yet.
func EnsureTopic(ctx context.Context, client *kgo.Client, cfg config.KafkaConfig, logger *slog.Logger) error {
	adm := kadm.NewClient(client)

	topics, err := adm.ListTopics(ctx, cfg.Topic)
	if err != nil {
		return fmt.Errorf("list kafka topics: %w", err)
	}
	if detail, ok := topics[cfg.Topic]; ok && detail.Err == nil {
		return nil
	}

	resp, err := adm.CreateTopic(ctx, cfg.Partitions, cfg.Replicas, nil, cfg.Topic)
	if err != nil {
		return fmt.Errorf("create kafka topic %s: %w", cfg.Topic, err)
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create kafka topic %s: %w", cfg.Topic, resp.Err)
	}
	logger.InfoContext(ctx, "kafka topic created",
		"topic", cfg.Topic,
		"partitions", cfg.Partitions,
		"replicas", cfg.Replicas,
	)
	return nil
}
