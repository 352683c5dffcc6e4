package dto

import "time"

// CreateUserRequest accepts is_active as an alias of copilot_enabled.
type CreateUserRequest struct {
	GithubUsername string  `json:"github_username" validate:"required,max=255"`
	OrganizationID *uint   `json:"organization_id"`
	Name           *string `json:"name" validate:"omitempty,max=255"`
	Email          *string `json:"email" validate:"omitempty,max=255"`
	Team           *string `json:"team" validate:"omitempty,max=255"`
	MaturityLevel  *int    `json:"maturity_level" validate:"omitempty,min=0,max=5"`
	CopilotEnabled *bool   `json:"copilot_enabled"`
	IsActive       *bool   `json:"is_active"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	GithubUsername  *string `json:"github_username" validate:"omitempty,min=1,max=255"`
	Name            *string `json:"name" validate:"omitempty,max=255"`
	Email           *string `json:"email" validate:"omitempty,max=255"`
	Team            *string `json:"team" validate:"omitempty,max=255"`
	MaturityLevel   *int    `json:"maturity_level" validate:"omitempty,min=0,max=5"`
	CopilotEnabled  *bool   `json:"copilot_enabled"`
	IsActive        *bool   `json:"is_active"`
	IsWeeklyActive  *bool   `json:"is_weekly_active"`
	IsMonthlyActive *bool   `json:"is_monthly_active"`
}

// UserResponse mirrors copilot_enabled into is_active for older clients.
type UserResponse struct {
	ID                 uint       `json:"id"`
	GithubUsername     string     `json:"github_username"`
	OrganizationID     uint       `json:"organization_id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Team               string     `json:"team"`
	MaturityLevel      int        `json:"maturity_level"`
	CopilotEnabled     bool       `json:"copilot_enabled"`
	CopilotEnabledDate *time.Time `json:"copilot_enabled_date"`
	IsWeeklyActive     bool       `json:"is_weekly_active"`
	IsMonthlyActive    bool       `json:"is_monthly_active"`
	IsActive           bool       `json:"is_active"`
	LastActivityDate   *time.Time `json:"last_activity_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type TeamStatsResponse struct {
	Team        string  `json:"team"`
	Count       int64   `json:"count"`
	AvgMaturity float64 `json:"avg_maturity"`
}

type MaturityStatsResponse struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// RecomputeResponse reports a maturity recompute run.
type RecomputeResponse struct {
	UsersUpdated int              `json:"users_updated"`
	Distribution map[string]int64 `json:"distribution"`
}

// ActivityRequest records one user's counters for one day; re-posting a date replaces it.
type ActivityRequest struct {
	Date                string   `json:"date" validate:"required,datetime=2006-01-02"`
	SuggestionsShown    int      `json:"suggestions_shown" validate:"gte=0"`
	SuggestionsAccepted int      `json:"suggestions_accepted" validate:"gte=0"`
	LinesSuggested      int      `json:"lines_suggested" validate:"gte=0"`
	LinesAccepted       int      `json:"lines_accepted" validate:"gte=0"`
	ChatInteractions    int      `json:"chat_interactions" validate:"gte=0"`
	FeaturesUsed        []string `json:"features_used"`
	CommitsCount        int      `json:"commits_count" validate:"gte=0"`
	AIAssistedCommits   int      `json:"ai_assisted_commits" validate:"gte=0"`
	PRsCreated          int      `json:"prs_created" validate:"gte=0"`
	AIAssistedPRs       int      `json:"ai_assisted_prs" validate:"gte=0"`
}

type ActivityResponse struct {
	ID                  uint     `json:"id"`
	UserID              uint     `json:"user_id"`
	Date                string   `json:"date"`
	SuggestionsShown    int      `json:"suggestions_shown"`
	SuggestionsAccepted int      `json:"suggestions_accepted"`
	AcceptanceRate      float64  `json:"acceptance_rate"`
	LinesSuggested      int      `json:"lines_suggested"`
	LinesAccepted       int      `json:"lines_accepted"`
	ChatInteractions    int      `json:"chat_interactions"`
	FeaturesUsed        []string `json:"features_used"`
	CommitsCount        int      `json:"commits_count"`
	AIAssistedCommits   int      `json:"ai_assisted_commits"`
	PRsCreated          int      `json:"prs_created"`
	AIAssistedPRs       int      `json:"ai_assisted_prs"`
}
