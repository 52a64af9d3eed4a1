// Package qualification holds the descriptor a submission client sends when
// registering a qualification type, together with the service environments
// it targets. The document builders in pkg/qualform do not depend on it.
package qualification

import (
	"errors"
	"fmt"
	"strings"
)

// Status values the service accepts for a qualification type.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// The service rejects retry delays shorter than this.
const minRetryDelaySeconds = 30

// Environment points at a requester endpoint and its worker-facing preview
// site.
type Environment struct {
	Endpoint string
	Preview  string
}

var (
	// Production is the live requester environment.
	Production = Environment{
		Endpoint: "https://mturk-requester.us-east-1.amazonaws.com",
		Preview:  "https://www.mturk.com/mturk/preview",
	}
	// Sandbox is the free test environment.
	Sandbox = Environment{
		Endpoint: "https://mturk-requester-sandbox.us-east-1.amazonaws.com",
		Preview:  "https://workersandbox.mturk.com/mturk/preview",
	}
)

// Type describes a qualification type: its worker-facing metadata plus the
// rendered test and answer key documents.
type Type struct {
	Name        string
	Description string
	Keywords    string
	// IsRequestable lets workers request the qualification directly.
	IsRequestable bool
	// AutoGranted grants AutoGrantedValue without a test.
	AutoGranted      bool
	AutoGrantedValue int
	// Test and AnswerKey carry the rendered QuestionForm and AnswerKey XML.
	Test      string
	AnswerKey string
	// TestDurationSeconds is how long a worker has to finish the test.
	TestDurationSeconds int
	// RetryDelaySeconds is the wait before a worker may retake the test.
	RetryDelaySeconds int
	Status            string
	// ID is assigned by the service on registration.
	ID string
}

// New returns a Type with the service defaults applied: requestable, active,
// minimum retry delay.
func New(name, description string) Type {
	return Type{
		Name:              name,
		Description:       description,
		IsRequestable:     true,
		RetryDelaySeconds: minRetryDelaySeconds,
		Status:            StatusActive,
	}
}

// Validate checks the field-level assertions the service enforces at
// registration time.
func (t Type) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("qualification: name is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return errors.New("qualification: description is required")
	}
	if t.RetryDelaySeconds < minRetryDelaySeconds {
		return fmt.Errorf("qualification: retry delay must be at least %d seconds, got %d",
			minRetryDelaySeconds, t.RetryDelaySeconds)
	}
	switch t.Status {
	case StatusActive, StatusInactive:
	default:
		return fmt.Errorf("qualification: status must be %q or %q, got %q",
			StatusActive, StatusInactive, t.Status)
	}
	if t.AnswerKey != "" && t.Test == "" {
		return errors.New("qualification: answer key set without a test")
	}
	return nil
}
