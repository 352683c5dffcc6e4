package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserActivityLog holds one user's counters for one day; it drives maturity and WAU/MAU.
type UserActivityLog struct {
	ID                  uint                         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              uint                         `gorm:"not null;uniqueIndex:idx_user_activity_user_date,priority:1" json:"user_id"`
	Date                time.Time                    `gorm:"type:date;not null;uniqueIndex:idx_user_activity_user_date,priority:2" json:"date"`
	SuggestionsShown    int                          `gorm:"not null;default:0" json:"suggestions_shown"`
	SuggestionsAccepted int                          `gorm:"not null;default:0" json:"suggestions_accepted"`
	LinesSuggested      int                          `gorm:"not null;default:0" json:"lines_suggested"`
	LinesAccepted       int                          `gorm:"not null;default:0" json:"lines_accepted"`
	ChatInteractions    int                          `gorm:"not null;default:0" json:"chat_interactions"`
	FeaturesUsed        datatypes.JSONType[[]string] `json:"features_used"`
	CommitsCount        int                          `gorm:"not null;default:0" json:"commits_count"`
	AIAssistedCommits   int                          `gorm:"column:ai_assisted_commits;not null;default:0" json:"ai_assisted_commits"`
	PRsCreated          int                          `gorm:"column:prs_created;not null;default:0" json:"prs_created"`
	AIAssistedPRs       int                          `gorm:"column:ai_assisted_prs;not null;default:0" json:"ai_assisted_prs"`
	CreatedAt           time.Time                    `json:"created_at"`
}

func (UserActivityLog) TableName() string {
	return "user_activity_logs"
}
