// Package kafka publishes completed risk assessments to downstream consumers
// (case management, audit, analytics).
package kafka

import (
	"context"
	"sync/atomic"

	"github.com/segmentio/kafka-go"

	"github.com/sentineldata/riskintel/internal/config"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/pkg/errors"
	"github.com/sentineldata/riskintel/pkg/types/common"
)

var (
	ErrProducerClosed = errors.New(errors.ErrCodeInternal, "producer closed")
)

// WriterInterface abstracts kafka.Writer for testing.
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes messages to Kafka.
type Producer struct {
	writer WriterInterface
	logger logging.Logger
	closed atomic.Bool
}

// NewProducer builds a producer from the service Kafka configuration.
func NewProducer(cfg config.KafkaConfig, log logging.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "kafka brokers must not be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks(cfg.RequiredAcks),
		MaxAttempts:  cfg.ProducerRetries,
		BatchSize:    cfg.BatchSize,
		WriteTimeout: cfg.WriteTimeout,
	}
	log.Info("kafka producer ready", logging.Any("brokers", cfg.Brokers))
	return &Producer{writer: writer, logger: log}, nil
}

// NewProducerWithWriter wires a pre-built writer; used by tests.
func NewProducerWithWriter(w WriterInterface, log logging.Logger) *Producer {
	return &Producer{writer: w, logger: log}
}

func requiredAcks(s string) kafka.RequiredAcks {
	switch s {
	case "none", "0":
		return kafka.RequireNone
	case "one", "1":
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}

// Publish sends one message, honoring the context deadline.
func (p *Producer) Publish(ctx context.Context, msg *common.ProducerMessage) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}
	if msg.Topic == "" {
		return errors.New(errors.ErrCodeValidation, "message topic must not be empty")
	}

	km := kafka.Message{
		Topic: msg.Topic,
		Key:   msg.Key,
		Value: msg.Value,
		Time:  msg.Timestamp,
	}
	for k, v := range msg.Headers {
		km.Headers = append(km.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, km); err != nil {
		return errors.Wrap(err, errors.ErrCodeAssessmentPublishFailed, "failed to publish message").WithDetail(msg.Topic)
	}
	return nil
}

// Close flushes and shuts down the writer.  Idempotent.
func (p *Producer) Close() error {
	if p.closed.Swap(true) {
		return nil
	}
	p.logger.Info("closing kafka producer")
	return p.writer.Close()
}
