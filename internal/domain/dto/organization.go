package dto

import "time"

type CreateOrganizationRequest struct {
	GithubOrg    string `json:"github_org" validate:"required,max=255"`
	Name         string `json:"name" validate:"max=255"`
	TotalSeats   int    `json:"total_seats" validate:"gte=0"`
	CopilotSeats int    `json:"copilot_seats" validate:"gte=0"`
}

// UpdateOrganizationRequest is a partial update; nil fields are left untouched.
type UpdateOrganizationRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	TotalSeats   *int    `json:"total_seats" validate:"omitempty,gte=0"`
	CopilotSeats *int    `json:"copilot_seats" validate:"omitempty,gte=0"`
}

type OrganizationResponse struct {
	ID           uint      `json:"id"`
	GithubOrg    string    `json:"github_org"`
	Name         string    `json:"name"`
	TotalSeats   int       `json:"total_seats"`
	CopilotSeats int       `json:"copilot_seats"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
