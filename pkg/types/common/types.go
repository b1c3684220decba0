// Package common defines the shared value types used across the riskintel
// platform: identifiers, timestamps, API envelopes, health reporting, and the
// messaging carrier types exchanged between the application layer and the
// kafka infrastructure.
package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID is the opaque identifier type for platform resources (entities,
// assessments, requests).
type ID string

// Validate reports whether the ID is non-empty and free of whitespace.
func (id ID) Validate() error {
	s := string(id)
	if s == "" {
		return fmt.Errorf("id must not be empty")
	}
	if strings.TrimSpace(s) != s || strings.ContainsAny(s, " \t\n") {
		return fmt.Errorf("id must not contain whitespace: %q", s)
	}
	return nil
}

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// GenerateID returns a prefixed random identifier, e.g. "asm_8f14e45f…".
func GenerateID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ─────────────────────────────────────────────────────────────────────────────
// API envelope
// ─────────────────────────────────────────────────────────────────────────────

// ErrorDetail is the machine-readable error body inside an APIResponse.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standard JSON envelope returned by all HTTP endpoints.
type APIResponse[T any] struct {
	Success bool         `json:"success"`
	Data    T            `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data}
}

// NewErrorResponse builds a failure envelope with the given code and message.
func NewErrorResponse(code, message string) APIResponse[any] {
	return APIResponse[any]{
		Success: false,
		Error:   &ErrorDetail{Code: code, Message: message},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Health reporting
// ─────────────────────────────────────────────────────────────────────────────

// HealthStatus is the coarse health state of a component or the whole service.
type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthDegraded  HealthStatus = "degraded"
	HealthUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth reports the health of one dependency (postgres, redis, kafka).
type ComponentHealth struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Messaging carrier types
// ─────────────────────────────────────────────────────────────────────────────

// ProducerMessage is the transport-agnostic message handed to the kafka
// producer.  Topic and Value are required; everything else is optional.
type ProducerMessage struct {
	Topic     string
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
	Partition int
}

// BatchItemError identifies a single failed message within a batch publish.
type BatchItemError struct {
	Index int
	Topic string
	Error error
}

// BatchPublishResult summarises the outcome of a batch publish.
type BatchPublishResult struct {
	Succeeded int
	Failed    int
	Errors    []BatchItemError
}
