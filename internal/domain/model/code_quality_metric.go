package model

import "time"

// CodeQualityMetric tracks what happened to AI-generated lines of a file after commit.
type CodeQualityMetric struct {
	ID                    uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Repository            string     `gorm:"size:255;not null;index" json:"repository"`
	CommitSHA             string     `gorm:"column:commit_sha;size:64;not null" json:"commit_sha"`
	FilePath              string     `gorm:"size:1024" json:"file_path"`
	IsAIGenerated         bool       `gorm:"column:is_ai_generated;not null;default:false" json:"is_ai_generated"`
	AILinesOriginal       int        `gorm:"column:ai_lines_original;not null;default:0" json:"ai_lines_original"`
	LinesModified         int        `gorm:"not null;default:0" json:"lines_modified"`
	ModificationDate      *time.Time `json:"modification_date,omitempty"`
	DaysUntilModification *int       `json:"days_until_modification,omitempty"`
	ModificationReason    string     `gorm:"size:255" json:"modification_reason"`
	CreatedAt             time.Time  `json:"created_at"`
}

func (CodeQualityMetric) TableName() string {
	return "code_quality_metrics"
}
