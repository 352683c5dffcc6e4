package model

import (
	"time"

	"gorm.io/datatypes"
)

// MCP event types recorded by the attributed-action log.
const (
	EventTypeCommit      = "commit"
	EventTypePullRequest = "pull_request"
	EventTypeBranch      = "branch"
	EventTypeFileCreate  = "file_create"
	EventTypeFileEdit    = "file_edit"
	EventTypeCodeReview  = "code_review"
	EventTypeIssue       = "issue"
	EventTypeSearch      = "search"
)

// EventTypes lists every accepted event type.
var EventTypes = []string{
	EventTypeCommit,
	EventTypePullRequest,
	EventTypeBranch,
	EventTypeFileCreate,
	EventTypeFileEdit,
	EventTypeCodeReview,
	EventTypeIssue,
	EventTypeSearch,
}

// MCPEvent is an append-only record of an AI-attributed repository action.
type MCPEvent struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	EventType      string            `gorm:"size:50;not null;index" json:"event_type"`
	GithubUsername string            `gorm:"column:github_username;size:255;index" json:"github_username"`
	Repository     string            `gorm:"size:255;index" json:"repository"`
	EventData      datatypes.JSONMap `json:"event_data"`
	EventTimestamp time.Time         `gorm:"not null" json:"event_timestamp"`
	CreatedAt      time.Time         `json:"created_at"`
}

func (MCPEvent) TableName() string {
	return "mcp_events"
}
