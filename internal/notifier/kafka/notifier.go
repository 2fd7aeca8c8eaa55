// Package kafka publishes notification requests to a Kafka topic consumed
// by the push gateway.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"cardwise/internal/advisory"
)

const (
	headerTriggerDelay = "trigger_delay_ms"
	headerContentType  = "content-type"
)

// Notifier produces one record per request, keyed by notification ID.
type Notifier struct {
	client      *kgo.Client
	admin       *kadm.Client
	topic       string
	partitions  int32
	replication int16
}

type Option func(*Notifier)

// WithTopicLayout sets partitions and replication used when the topic has
// to be created.
func WithTopicLayout(partitions int32, replication int16) Option {
	return func(n *Notifier) {
		n.partitions = partitions
		n.replication = replication
	}
}

// New connects a producer to brokers.
func New(brokers []string, topic string, opts ...Option) (*Notifier, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	n := &Notifier{
		client:      client,
		admin:       kadm.NewClient(client),
		topic:       topic,
		partitions:  1,
		replication: 1,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// RequestAuthorization reports whether the delivery topic is usable,
// creating it when missing.
func (n *Notifier) RequestAuthorization(ctx context.Context) (bool, error) {
	topics, err := n.admin.ListTopics(ctx, n.topic)
	if err != nil {
		return false, fmt.Errorf("list topics: %w", err)
	}
	if topics.Has(n.topic) {
		return true, nil
	}
	resp, err := n.admin.CreateTopic(ctx, n.partitions, n.replication, nil, n.topic)
	if err != nil {
		return false, fmt.Errorf("create topic %s: %w", n.topic, err)
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return false, fmt.Errorf("create topic %s: %w", n.topic, resp.Err)
	}
	return true, nil
}

// Deliver produces req synchronously so failures reach the advisory.
func (n *Notifier) Deliver(ctx context.Context, req advisory.Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal notification request: %w", err)
	}
	record := &kgo.Record{
		Topic: n.topic,
		Key:   []byte(req.ID.String()),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: headerTriggerDelay, Value: []byte(strconv.FormatInt(req.TriggerDelay.Milliseconds(), 10))},
			{Key: headerContentType, Value: []byte("application/json")},
		},
	}
	if err := n.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce notification: %w", err)
	}
	return nil
}

// Ping checks broker connectivity.
func (n *Notifier) Ping(ctx context.Context) error {
	return n.client.Ping(ctx)
}

func (n *Notifier) Close() {
	n.client.Close()
}
