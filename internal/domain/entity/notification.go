// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one push notification record together with its delivery and read state.
type Notification struct {
	ID         uuid.UUID         `json:"id"`
	UserID     *uuid.UUID        `json:"user_id"` // Nil for broadcast-style records.
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Metadata   map[string]string `json:"metadata"`
	Sent       bool              `json:"sent"`
	IsRead     bool              `json:"is_read"`
	IsDeleted  bool              `json:"is_deleted"`
	ReceivedAt time.Time         `json:"received_at"`
}

// JobStatus is the processing state of a notification job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// NotificationJob tracks the delivery attempts made for a notification.
type NotificationJob struct {
	ID             uuid.UUID `json:"id"`
	NotificationID uuid.UUID `json:"notification_id"`
	Status         JobStatus `json:"status"`
	Attempts       int       `json:"attempts"`
	LastError      string    `json:"last_error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DeliveryResult is the outcome reported by the delivery provider for a single token.
type DeliveryResult struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	// Unregistered is set when the provider reports the token as permanently invalid.
	Unregistered bool `json:"-"`
}

// DeliveryReport aggregates the per-token results of one multicast send.
type DeliveryReport struct {
	Results []DeliveryResult
}

// SuccessCount returns the number of tokens that accepted the message.
func (r *DeliveryReport) SuccessCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Success {
			count++
		}
	}

	return count
}

// FailureCount returns the number of tokens that rejected the message.
func (r *DeliveryReport) FailureCount() int {
	return len(r.Results) - r.SuccessCount()
}

// UnregisteredTokens returns the tokens the provider reported as permanently invalid.
func (r *DeliveryReport) UnregisteredTokens() []string {
	var tokens []string
	for _, result := range r.Results {
		if !result.Success && result.Unregistered {
			tokens = append(tokens, result.Token)
		}
	}

	return tokens
}

// SendOutcome is what a dispatcher reports back to the caller after a send.
type SendOutcome struct {
	Sent         int              `json:"sent"`
	Failed       int              `json:"failed"`
	Notification *Notification    `json:"notification"`
	Results      []DeliveryResult `json:"results,omitempty"`
}
