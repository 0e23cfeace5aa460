package domain

import "time"

// Event mirrors the message restaurant-svc publishes on the events topic.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Identity  string    `json:"identity"`
	EntityID  string    `json:"entity_id"`
	Summary   string    `json:"summary"`
	Amount    string    `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Counts is the number of events seen per event type.
type Counts map[string]int64
