package model

import "time"

// User is a member of an organization with its Copilot enablement and maturity state.
type User struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	GithubUsername     string     `gorm:"column:github_username;uniqueIndex;not null;size:255" json:"github_username"`
	OrganizationID     uint       `gorm:"index;not null" json:"organization_id"`
	Email              string     `gorm:"size:255" json:"email"`
	Name               string     `gorm:"size:255" json:"name"`
	Team               string     `gorm:"size:255;index" json:"team"`
	CopilotEnabled     bool       `gorm:"not null;default:false" json:"copilot_enabled"`
	CopilotEnabledDate *time.Time `json:"copilot_enabled_date,omitempty"`
	MaturityLevel      int        `gorm:"not null;default:0;check:chk_users_maturity_level,maturity_level >= 0 AND maturity_level <= 5" json:"maturity_level"`
	IsWeeklyActive     bool       `gorm:"not null;default:false" json:"is_weekly_active"`
	IsMonthlyActive    bool       `gorm:"not null;default:false" json:"is_monthly_active"`
	LastActivityDate   *time.Time `json:"last_activity_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
