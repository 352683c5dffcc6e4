package model

import (
	"time"

	"gorm.io/datatypes"
)

// Breakdown counts accepted suggestions per language or editor.
type Breakdown = datatypes.JSONType[map[string]int]

// NewBreakdown wraps m, replacing nil with an empty map so it serialises as {}.
func NewBreakdown(m map[string]int) Breakdown {
	if m == nil {
		m = map[string]int{}
	}
	return datatypes.NewJSONType(m)
}

// DailyMetrics is one row per organization per calendar day.
type DailyMetrics struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganizationID uint      `gorm:"not null;uniqueIndex:idx_daily_metrics_org_date,priority:1" json:"organization_id"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_metrics_org_date,priority:2" json:"date"`

	// Adoption
	TotalUsers         int     `gorm:"not null;default:0" json:"total_users"`
	EnabledUsers       int     `gorm:"not null;default:0" json:"enabled_users"`
	ActiveUsers        int     `gorm:"not null;default:0" json:"active_users"`
	WeeklyActiveUsers  int     `gorm:"not null;default:0" json:"weekly_active_users"`
	MonthlyActiveUsers int     `gorm:"not null;default:0" json:"monthly_active_users"`
	ActivationRate     float64 `gorm:"not null;default:0" json:"activation_rate"`
	PromptsPerUser     float64 `gorm:"not null;default:0" json:"prompts_per_user"`
	FeaturesUtilized   int     `gorm:"not null;default:0" json:"features_utilized"`
	TeamActivationRate float64 `gorm:"not null;default:0" json:"team_activation_rate"`

	L0Count int `gorm:"column:l0_count;not null;default:0" json:"l0_count"`
	L1Count int `gorm:"column:l1_count;not null;default:0" json:"l1_count"`
	L2Count int `gorm:"column:l2_count;not null;default:0" json:"l2_count"`
	L3Count int `gorm:"column:l3_count;not null;default:0" json:"l3_count"`
	L4Count int `gorm:"column:l4_count;not null;default:0" json:"l4_count"`
	L5Count int `gorm:"column:l5_count;not null;default:0" json:"l5_count"`

	// Productivity
	TotalSuggestionsShown    int     `gorm:"not null;default:0" json:"total_suggestions_shown"`
	TotalSuggestionsAccepted int     `gorm:"not null;default:0" json:"total_suggestions_accepted"`
	AcceptanceRate           float64 `gorm:"not null;default:0" json:"acceptance_rate"`
	TotalLinesSuggested      int     `gorm:"not null;default:0" json:"total_lines_suggested"`
	TotalLinesAccepted       int     `gorm:"not null;default:0" json:"total_lines_accepted"`
	TotalChatInteractions    int     `gorm:"not null;default:0" json:"total_chat_interactions"`
	AIAssistedCommits        int     `gorm:"column:ai_assisted_commits;not null;default:0" json:"ai_assisted_commits"`
	AIAssistedPRs            int     `gorm:"column:ai_assisted_prs;not null;default:0" json:"ai_assisted_prs"`
	TotalCommits             int     `gorm:"not null;default:0" json:"total_commits"`
	TotalPRs                 int     `gorm:"column:total_prs;not null;default:0" json:"total_prs"`
	AICodeLines              int     `gorm:"column:ai_code_lines;not null;default:0" json:"ai_code_lines"`
	AvgTimeToFirstCommit     float64 `gorm:"not null;default:0" json:"avg_time_to_first_commit"`
	AvgPRCycleTime           float64 `gorm:"column:avg_pr_cycle_time;not null;default:0" json:"avg_pr_cycle_time"`

	// Quality
	AICodeRetentionRate    float64 `gorm:"column:ai_code_retention_rate;not null;default:0" json:"ai_code_retention_rate"`
	AICodeModificationRate float64 `gorm:"column:ai_code_modification_rate;not null;default:0" json:"ai_code_modification_rate"`
	AICodeBugRate          float64 `gorm:"column:ai_code_bug_rate;not null;default:0" json:"ai_code_bug_rate"`
	PRRejectionRate        float64 `gorm:"column:pr_rejection_rate;not null;default:0" json:"pr_rejection_rate"`
	AvgReviewComments      float64 `gorm:"not null;default:0" json:"avg_review_comments"`

	LanguageBreakdown Breakdown `json:"language_breakdown"`
	EditorBreakdown   Breakdown `json:"editor_breakdown"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyMetrics) TableName() string {
	return "daily_metrics"
}
