package dto

import "time"

// MetricsRequest creates or replaces the row for (organization_id, date).
// acceptance_rate and activation_rate are recomputed from the counts.
type MetricsRequest struct {
	OrganizationID uint   `json:"organization_id" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`

	TotalUsers         int     `json:"total_users" validate:"gte=0"`
	EnabledUsers       int     `json:"enabled_users" validate:"gte=0"`
	ActiveUsers        int     `json:"active_users" validate:"gte=0"`
	WeeklyActiveUsers  int     `json:"weekly_active_users" validate:"gte=0"`
	MonthlyActiveUsers int     `json:"monthly_active_users" validate:"gte=0"`
	ActivationRate     float64 `json:"activation_rate"`
	PromptsPerUser     float64 `json:"prompts_per_user" validate:"gte=0"`
	FeaturesUtilized   int     `json:"features_utilized" validate:"gte=0"`
	TeamActivationRate float64 `json:"team_activation_rate" validate:"gte=0"`

	L0Count int `json:"l0_count" validate:"gte=0"`
	L1Count int `json:"l1_count" validate:"gte=0"`
	L2Count int `json:"l2_count" validate:"gte=0"`
	L3Count int `json:"l3_count" validate:"gte=0"`
	L4Count int `json:"l4_count" validate:"gte=0"`
	L5Count int `json:"l5_count" validate:"gte=0"`

	TotalSuggestionsShown    int     `json:"total_suggestions_shown" validate:"gte=0"`
	TotalSuggestionsAccepted int     `json:"total_suggestions_accepted" validate:"gte=0"`
	AcceptanceRate           float64 `json:"acceptance_rate"`
	TotalLinesSuggested      int     `json:"total_lines_suggested" validate:"gte=0"`
	TotalLinesAccepted       int     `json:"total_lines_accepted" validate:"gte=0"`
	TotalChatInteractions    int     `json:"total_chat_interactions" validate:"gte=0"`
	AIAssistedCommits        int     `json:"ai_assisted_commits" validate:"gte=0"`
	AIAssistedPRs            int     `json:"ai_assisted_prs" validate:"gte=0"`
	TotalCommits             int     `json:"total_commits" validate:"gte=0"`
	TotalPRs                 int     `json:"total_prs" validate:"gte=0"`
	AICodeLines              int     `json:"ai_code_lines" validate:"gte=0"`
	AvgTimeToFirstCommit     float64 `json:"avg_time_to_first_commit" validate:"gte=0"`
	AvgPRCycleTime           float64 `json:"avg_pr_cycle_time" validate:"gte=0"`

	AICodeRetentionRate    float64 `json:"ai_code_retention_rate" validate:"gte=0,lte=100"`
	AICodeModificationRate float64 `json:"ai_code_modification_rate" validate:"gte=0,lte=100"`
	AICodeBugRate          float64 `json:"ai_code_bug_rate" validate:"gte=0,lte=100"`
	PRRejectionRate        float64 `json:"pr_rejection_rate" validate:"gte=0,lte=100"`
	AvgReviewComments      float64 `json:"avg_review_comments" validate:"gte=0"`

	LanguageBreakdown map[string]int `json:"language_breakdown"`
	EditorBreakdown   map[string]int `json:"editor_breakdown"`
}

// MetricsResponse is a full DailyMetrics row with rates derived from counts.
type MetricsResponse struct {
	ID             uint   `json:"id"`
	OrganizationID uint   `json:"organization_id"`
	Date           string `json:"date"`

	TotalUsers         int     `json:"total_users"`
	EnabledUsers       int     `json:"enabled_users"`
	ActiveUsers        int     `json:"active_users"`
	WeeklyActiveUsers  int     `json:"weekly_active_users"`
	MonthlyActiveUsers int     `json:"monthly_active_users"`
	ActivationRate     float64 `json:"activation_rate"`
	PromptsPerUser     float64 `json:"prompts_per_user"`
	FeaturesUtilized   int     `json:"features_utilized"`
	TeamActivationRate float64 `json:"team_activation_rate"`

	L0Count int `json:"l0_count"`
	L1Count int `json:"l1_count"`
	L2Count int `json:"l2_count"`
	L3Count int `json:"l3_count"`
	L4Count int `json:"l4_count"`
	L5Count int `json:"l5_count"`

	TotalSuggestionsShown    int     `json:"total_suggestions_shown"`
	TotalSuggestionsAccepted int     `json:"total_suggestions_accepted"`
	AcceptanceRate           float64 `json:"acceptance_rate"`
	TotalLinesSuggested      int     `json:"total_lines_suggested"`
	TotalLinesAccepted       int     `json:"total_lines_accepted"`
	TotalChatInteractions    int     `json:"total_chat_interactions"`
	AIAssistedCommits        int     `json:"ai_assisted_commits"`
	AIAssistedPRs            int     `json:"ai_assisted_prs"`
	TotalCommits             int     `json:"total_commits"`
	TotalPRs                 int     `json:"total_prs"`
	AICodeLines              int     `json:"ai_code_lines"`
	AvgTimeToFirstCommit     float64 `json:"avg_time_to_first_commit"`
	AvgPRCycleTime           float64 `json:"avg_pr_cycle_time"`

	AICodeRetentionRate    float64 `json:"ai_code_retention_rate"`
	AICodeModificationRate float64 `json:"ai_code_modification_rate"`
	AICodeBugRate          float64 `json:"ai_code_bug_rate"`
	PRRejectionRate        float64 `json:"pr_rejection_rate"`
	AvgReviewComments      float64 `json:"avg_review_comments"`

	LanguageBreakdown map[string]int `json:"language_breakdown"`
	EditorBreakdown   map[string]int `json:"editor_breakdown"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdoptionSummary struct {
	WAU               int     `json:"wau"`
	MAU               int     `json:"mau"`
	ActivationRate    float64 `json:"activation_rate"`
	AvgPromptsPerUser float64 `json:"avg_prompts_per_user"`
	TotalUsers        int     `json:"total_users"`
	EnabledUsers      int     `json:"enabled_users"`
}

type AdoptionTrend struct {
	Date           string  `json:"date"`
	ActiveUsers    int     `json:"active_users"`
	Prompts        int     `json:"prompts"`
	Suggestions    int     `json:"suggestions"`
	ActivationRate float64 `json:"activation_rate"`
}

type AdoptionResponse struct {
	Summary AdoptionSummary `json:"summary"`
	Trends  []AdoptionTrend `json:"trends"`
}

type ProductivitySummary struct {
	TotalAICommits      int     `json:"total_ai_commits"`
	TotalAIPRs          int     `json:"total_ai_prs"`
	AvgAcceptanceRate   float64 `json:"avg_acceptance_rate"`
	TotalLinesGenerated int     `json:"total_lines_generated"`
	TotalSuggestions    int     `json:"total_suggestions"`
	TotalAccepted       int     `json:"total_accepted"`
}

type ProductivityTrend struct {
	Date                string  `json:"date"`
	SuggestionsShown    int     `json:"suggestions_shown"`
	SuggestionsAccepted int     `json:"suggestions_accepted"`
	AcceptanceRate      float64 `json:"acceptance_rate"`
	AICommits           int     `json:"ai_commits"`
	AIPRs               int     `json:"ai_prs"`
	LinesGenerated      int     `json:"lines_generated"`
}

type ProductivityResponse struct {
	Summary ProductivitySummary `json:"summary"`
	Trends  []ProductivityTrend `json:"trends"`
}

type QualitySummary struct {
	AvgRetentionRate    float64 `json:"avg_retention_rate"`
	AvgModificationRate float64 `json:"avg_modification_rate"`
	AvgBugRate          float64 `json:"avg_bug_rate"`
	AvgPRRejectionRate  float64 `json:"avg_pr_rejection_rate"`
}

type QualityTrend struct {
	Date             string  `json:"date"`
	RetentionRate    float64 `json:"retention_rate"`
	ModificationRate float64 `json:"modification_rate"`
	BugRate          float64 `json:"bug_rate"`
	PRRejectionRate  float64 `json:"pr_rejection_rate"`
}

type QualityResponse struct {
	Summary QualitySummary `json:"summary"`
	Trends  []QualityTrend `json:"trends"`
}
