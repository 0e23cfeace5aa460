package domain

import "time"

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventBookingConfirmed   = "booking.confirmed"
	EventBookingDeleted     = "booking.deleted"
	EventInquirySubmitted   = "inquiry.submitted"
	EventInquiryReplied     = "inquiry.replied"
	EventUserRegistered     = "user.registered"
	EventUserDeleted        = "user.deleted"
	EventMenuItemAdded      = "menu.item_added"
	EventMenuItemRemoved    = "menu.item_removed"
)

// Event is published to Kafka after a successful mutation.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Identity  string    `json:"identity"`
	EntityID  string    `json:"entity_id"`
	Summary   string    `json:"summary"`
	Amount    string    `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
