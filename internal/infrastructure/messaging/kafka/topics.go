package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sentineldata/riskintel/internal/domain/risk"
	"github.com/sentineldata/riskintel/pkg/errors"
	"github.com/sentineldata/riskintel/pkg/types/common"
)

// TopicAssessmentCompleted carries one event per finished risk assessment.
// Messages are keyed by entity ID so per-entity ordering is preserved.
const TopicAssessmentCompleted = "riskintel.assessments.completed"

// AssessmentCompletedEvent is the wire payload for a finished assessment.
// It carries the headline numbers only; consumers needing the full analytics
// fetch the assessment through the API.
type AssessmentCompletedEvent struct {
	EntityID         string    `json:"entity_id"`
	TotalScore       float64   `json:"total_score"`
	RiskLevel        string    `json:"risk_level"`
	ConfidenceScore  float64   `json:"confidence_score"`
	ConfidenceLevel  string    `json:"confidence_level"`
	Trajectory       string    `json:"trajectory"`
	AlgorithmVersion string    `json:"algorithm_version"`
	ReferenceVersion string    `json:"reference_version"`
	AssessedAt       time.Time `json:"assessed_at"`
}

// PublishAssessment encodes and publishes a completed assessment.  It
// satisfies the screening service's publisher interface.
func (p *Producer) PublishAssessment(ctx context.Context, a *risk.RiskAssessment) error {
	msg, err := NewAssessmentMessage(a)
	if err != nil {
		return err
	}
	return p.Publish(ctx, msg)
}

// NewAssessmentMessage converts an assessment into a producer message for
// TopicAssessmentCompleted.
func NewAssessmentMessage(a *risk.RiskAssessment) (*common.ProducerMessage, error) {
	event := AssessmentCompletedEvent{
		EntityID:         a.EntityID,
		TotalScore:       a.TotalScore,
		RiskLevel:        a.RiskLevel,
		ConfidenceScore:  a.ConfidenceScore,
		ConfidenceLevel:  string(a.ConfidenceLevel),
		Trajectory:       a.Trajectory.Trend,
		AlgorithmVersion: a.Metadata.AlgorithmVersion,
		ReferenceVersion: a.Metadata.ReferenceVersion,
		AssessedAt:       a.Metadata.Timestamp,
	}
	value, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode assessment event")
	}
	return &common.ProducerMessage{
		Topic:     TopicAssessmentCompleted,
		Key:       []byte(a.EntityID),
		Value:     value,
		Timestamp: a.Metadata.Timestamp,
	}, nil
}
