package model

import "time"

// Organization is the tenant root; it owns users and daily metrics.
type Organization struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GithubOrg    string    `gorm:"column:github_org;uniqueIndex;not null;size:255" json:"github_org"`
	Name         string    `gorm:"size:255" json:"name"`
	TotalSeats   int       `gorm:"not null;default:0" json:"total_seats"`
	CopilotSeats int       `gorm:"not null;default:0" json:"copilot_seats"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}
