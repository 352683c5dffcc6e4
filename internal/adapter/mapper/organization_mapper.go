package mapper

import (
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// OrganizationFromCreate builds a new organization; the display name defaults to the org login.
func OrganizationFromCreate(req *dto.CreateOrganizationRequest) *model.Organization {
	name := req.Name
	if name == "" {
		name = req.GithubOrg
	}
	return &model.Organization{
		GithubOrg:    req.GithubOrg,
		Name:         name,
		TotalSeats:   req.TotalSeats,
		CopilotSeats: req.CopilotSeats,
	}
}

// ApplyOrganizationUpdate copies the set fields of req onto org.
func ApplyOrganizationUpdate(org *model.Organization, req *dto.UpdateOrganizationRequest) {
	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.TotalSeats != nil {
		org.TotalSeats = *req.TotalSeats
	}
	if req.CopilotSeats != nil {
		org.CopilotSeats = *req.CopilotSeats
	}
}

func OrganizationToResponse(org *model.Organization) *dto.OrganizationResponse {
	if org == nil {
		return nil
	}
	return &dto.OrganizationResponse{
		ID:           org.ID,
		GithubOrg:    org.GithubOrg,
		Name:         org.Name,
		TotalSeats:   org.TotalSeats,
		CopilotSeats: org.CopilotSeats,
		CreatedAt:    org.CreatedAt,
		UpdatedAt:    org.UpdatedAt,
	}
}

func OrganizationsToResponses(orgs []*model.Organization) []*dto.OrganizationResponse {
	out := make([]*dto.OrganizationResponse, len(orgs))
	for i, org := range orgs {
		out[i] = OrganizationToResponse(org)
	}
	return out
}
