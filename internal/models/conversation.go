package models

import "time"

// Conversation is an interaction record. Only the count is used by the dashboard.
type Conversation struct {
	ID        string    `json:"id"`
	LeadID    *string   `json:"lead_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
