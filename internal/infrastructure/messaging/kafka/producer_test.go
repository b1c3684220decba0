package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentineldata/riskintel/internal/domain/risk"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/pkg/errors"
	"github.com/sentineldata/riskintel/pkg/types/common"
)

type captureWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	w := &captureWriter{}
	p := NewProducerWithWriter(w, logging.NewNopLogger())

	err := p.Publish(context.Background(), &common.ProducerMessage{
		Topic:   "riskintel.assessments.completed",
		Key:     []byte("ENT-1"),
		Value:   []byte(`{"total_score":72.5}`),
		Headers: map[string]string{"source": "screening"},
	})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "riskintel.assessments.completed", msg.Topic)
	assert.Equal(t, []byte("ENT-1"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "source", msg.Headers[0].Key)
}

func TestPublishRejectsEmptyTopic(t *testing.T) {
	p := NewProducerWithWriter(&captureWriter{}, logging.NewNopLogger())
	err := p.Publish(context.Background(), &common.ProducerMessage{Value: []byte("x")})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestPublishWrapsWriterError(t *testing.T) {
	w := &captureWriter{err: assert.AnError}
	p := NewProducerWithWriter(w, logging.NewNopLogger())
	err := p.Publish(context.Background(), &common.ProducerMessage{Topic: "t", Value: []byte("x")})
	assert.True(t, errors.IsCode(err, errors.ErrCodeAssessmentPublishFailed))
}

func TestPublishAfterClose(t *testing.T) {
	w := &captureWriter{}
	p := NewProducerWithWriter(w, logging.NewNopLogger())
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
	// Close is idempotent.
	require.NoError(t, p.Close())

	err := p.Publish(context.Background(), &common.ProducerMessage{Topic: "t"})
	assert.ErrorIs(t, err, ErrProducerClosed)
}

func TestNewAssessmentMessage(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := &risk.RiskAssessment{
		EntityID:        "ENT-9",
		TotalScore:      81.3,
		ConfidenceScore: 92,
		ConfidenceLevel: risk.ConfidenceHigh,
		RiskLevel:       "Critical",
	}
	a.Trajectory.Trend = "increasing"
	a.Metadata.AlgorithmVersion = risk.AlgorithmVersion
	a.Metadata.ReferenceVersion = "2025.2"
	a.Metadata.Timestamp = ts

	msg, err := NewAssessmentMessage(a)
	require.NoError(t, err)
	assert.Equal(t, TopicAssessmentCompleted, msg.Topic)
	assert.Equal(t, []byte("ENT-9"), msg.Key)
	assert.Equal(t, ts, msg.Timestamp)

	var event AssessmentCompletedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "ENT-9", event.EntityID)
	assert.Equal(t, 81.3, event.TotalScore)
	assert.Equal(t, "Critical", event.RiskLevel)
	assert.Equal(t, "high", event.ConfidenceLevel)
	assert.Equal(t, "increasing", event.Trajectory)
	assert.Equal(t, "3.0.0-advanced", event.AlgorithmVersion)
}
