package dto

import "time"

type CodeMetricRequest struct {
	Repository            string `json:"repository" validate:"required,max=255"`
	CommitSHA             string `json:"commit_sha" validate:"required,max=64"`
	FilePath              string `json:"file_path" validate:"max=1024"`
	IsAIGenerated         bool   `json:"is_ai_generated"`
	AILinesOriginal       int    `json:"ai_lines_original" validate:"gte=0"`
	LinesModified         int    `json:"lines_modified" validate:"gte=0"`
	ModificationDate      string `json:"modification_date" validate:"omitempty,datetime=2006-01-02"`
	DaysUntilModification *int   `json:"days_until_modification" validate:"omitempty,gte=0"`
	ModificationReason    string `json:"modification_reason" validate:"max=255"`
}

type CodeMetricResponse struct {
	ID                    uint       `json:"id"`
	Repository            string     `json:"repository"`
	CommitSHA             string     `json:"commit_sha"`
	FilePath              string     `json:"file_path"`
	IsAIGenerated         bool       `json:"is_ai_generated"`
	AILinesOriginal       int        `json:"ai_lines_original"`
	LinesModified         int        `json:"lines_modified"`
	ModificationRate      float64    `json:"modification_rate"`
	ModificationDate      *time.Time `json:"modification_date"`
	DaysUntilModification *int       `json:"days_until_modification"`
	ModificationReason    string     `json:"modification_reason"`
	CreatedAt             time.Time  `json:"created_at"`
}
