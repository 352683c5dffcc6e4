package dto

// KPIValue is the {target, current, achieved} triple keyed by KPI name in the summary.
type KPIValue struct {
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Achieved bool    `json:"achieved"`
}

// DashboardSummary combines live user counts with the latest daily metrics row.
type DashboardSummary struct {
	TotalUsers         int64 `json:"total_users"`
	EnabledUsers       int64 `json:"enabled_users"`
	ActiveUsers        int64 `json:"active_users"`
	WeeklyActiveUsers  int   `json:"weekly_active_users"`
	MonthlyActiveUsers int   `json:"monthly_active_users"`

	ActivationRate     float64 `json:"activation_rate"`
	AcceptanceRate     float64 `json:"acceptance_rate"`
	PromptsPerUser     float64 `json:"prompts_per_user"`
	FeaturesUtilized   int     `json:"features_utilized"`
	TeamActivationRate float64 `json:"team_activation_rate"`

	TotalSuggestions    int `json:"total_suggestions"`
	AcceptedSuggestions int `json:"accepted_suggestions"`
	ChatInteractions    int `json:"chat_interactions"`
	AIAssistedCommits   int `json:"ai_assisted_commits"`
	AIAssistedPRs       int `json:"ai_assisted_prs"`
	AICodeLines         int `json:"ai_code_lines"`

	CodeRetentionRate float64 `json:"code_retention_rate"`
	ModificationRate  float64 `json:"modification_rate"`
	BugRate           float64 `json:"bug_rate"`
	PRRejectionRate   float64 `json:"pr_rejection_rate"`

	L0Count int64 `json:"l0_count"`
	L1Count int64 `json:"l1_count"`
	L2Count int64 `json:"l2_count"`
	L3Count int64 `json:"l3_count"`
	L4Count int64 `json:"l4_count"`
	L5Count int64 `json:"l5_count"`

	KPIs map[string]KPIValue `json:"kpis"`

	LanguageBreakdown map[string]int `json:"language_breakdown"`
	EditorBreakdown   map[string]int `json:"editor_breakdown"`
}

// TrendPoint is one day of the flat dashboard time series.
type TrendPoint struct {
	Date                string  `json:"date"`
	ActiveUsers         int     `json:"active_users"`
	ActivationRate      float64 `json:"activation_rate"`
	WeeklyActiveUsers   int     `json:"weekly_active_users"`
	AcceptanceRate      float64 `json:"acceptance_rate"`
	SuggestionsShown    int     `json:"suggestions_shown"`
	SuggestionsAccepted int     `json:"suggestions_accepted"`
	ChatInteractions    int     `json:"chat_interactions"`
	AIAssistedCommits   int     `json:"ai_assisted_commits"`
	AICodeLines         int     `json:"ai_code_lines"`
	CodeRetentionRate   float64 `json:"code_retention_rate"`
	ModificationRate    float64 `json:"modification_rate"`
}

type MaturityDistributionItem struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Count       int64  `json:"count"`
}

type TeamBreakdownItem struct {
	Team           string  `json:"team"`
	TotalUsers     int64   `json:"total_users"`
	EnabledUsers   int64   `json:"enabled_users"`
	ActiveUsers    int64   `json:"active_users"`
	AvgMaturity    float64 `json:"avg_maturity"`
	ActivationRate float64 `json:"activation_rate"`
}
