package repository

import (
	"context"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// OrganizationRepository defines storage operations for organizations.
// Lookups return (nil, nil) when no row matches.
type OrganizationRepository interface {
	List(ctx context.Context) ([]*model.Organization, error)
	GetByID(ctx context.Context, id uint) (*model.Organization, error)
	GetByGithubOrg(ctx context.Context, githubOrg string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uint) error
}
