package entity

import "time"

// MetricsFilter selects DailyMetrics rows.
type MetricsFilter struct {
	OrganizationID *uint
	Since          time.Time
}

// UserFilter selects users for listing and aggregates.
type UserFilter struct {
	OrganizationID *uint
	Team           string
	MaturityLevel  *int
	ActiveOnly     bool
}

// EventFilter selects MCP events.
type EventFilter struct {
	EventType  string
	Username   string
	Repository string
	Since      *time.Time
	Until      *time.Time
	Limit      int
}

const (
	DefaultEventLimit = 100
	MaxEventLimit     = 1000
)

// Normalize clamps Limit into [1, MaxEventLimit].
func (f *EventFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultEventLimit
	}
	if f.Limit > MaxEventLimit {
		f.Limit = MaxEventLimit
	}
}
