package dto

import "time"

type EventRequest struct {
	EventType      string                 `json:"event_type" validate:"required"`
	GithubUsername string                 `json:"github_username" validate:"max=255"`
	Repository     string                 `json:"repository" validate:"max=255"`
	EventData      map[string]interface{} `json:"event_data"`
	EventTimestamp *time.Time             `json:"event_timestamp"`
}

type EventResponse struct {
	ID             uint                   `json:"id"`
	EventType      string                 `json:"event_type"`
	GithubUsername string                 `json:"github_username"`
	Repository     string                 `json:"repository"`
	EventData      map[string]interface{} `json:"event_data"`
	EventTimestamp time.Time              `json:"event_timestamp"`
}

type EventMetricsResponse struct {
	TotalEvents        int64            `json:"total_events"`
	ByType             map[string]int64 `json:"by_type"`
	UniqueUsers        int64            `json:"unique_users"`
	UniqueRepositories int64            `json:"unique_repositories"`
}
