package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// Notifier is the pluggable selection-changed sink. The engine calls it
// after every mutating operation; delivery is best effort.
type Notifier interface {
	SelectionChanged(ctx context.Context, event SelectionChangedEvent) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka notifier
type KafkaProducerConfig struct {
	Brokers         []string
	Topic           string
	RetryMax        int
	Timeout         time.Duration
	RequiredAcks    sarama.RequiredAcks
	CompressionType sarama.CompressionCodec
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig(brokers []string, topic string) *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:         brokers,
		Topic:           topic,
		RetryMax:        3,
		Timeout:         10 * time.Second,
		RequiredAcks:    sarama.WaitForAll,
		CompressionType: sarama.CompressionSnappy,
	}
}

// KafkaNotifier publishes selection-changed events to Kafka
type KafkaNotifier struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
}

// NewKafkaNotifier creates a new Kafka-backed notifier
func NewKafkaNotifier(config *KafkaProducerConfig) (*KafkaNotifier, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout

	// Hash partitioner keyed by offer id keeps one itinerary's events ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaNotifier{
		producer: producer,
		config:   config,
	}, nil
}

// SelectionChanged publishes one event, keyed by offer id
func (n *KafkaNotifier) SelectionChanged(ctx context.Context, event SelectionChangedEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal selection event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: n.config.Topic,
		Key:   sarama.StringEncoder(event.OfferID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("action"), Value: []byte(event.Action)},
		},
	}

	if _, _, err := n.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish selection event: %w", err)
	}

	return nil
}

// Close shuts down the underlying producer
func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}

// NoopNotifier is used when Kafka is not configured.
type NoopNotifier struct{}

func (NoopNotifier) SelectionChanged(ctx context.Context, event SelectionChangedEvent) error {
	return nil
}

func (NoopNotifier) Close() error { return nil }
