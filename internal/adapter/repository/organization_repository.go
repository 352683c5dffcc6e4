package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	domainRepo "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type organizationRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB, logger *zap.Logger) domainRepo.OrganizationRepository {
	return &organizationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *organizationRepository) List(ctx context.Context) ([]*model.Organization, error) {
	var orgs []*model.Organization

	if err := conn(ctx, r.db).Order("id ASC").Find(&orgs).Error; err != nil {
		r.logger.Error("Failed to list organizations", zap.Error(err))
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return orgs, nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id uint) (*model.Organization, error) {
	var org model.Organization

	err := conn(ctx, r.db).Where("id = ?", id).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get organization", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}

func (r *organizationRepository) GetByGithubOrg(ctx context.Context, githubOrg string) (*model.Organization, error) {
	var org model.Organization

	err := conn(ctx, r.db).Where("github_org = ?", githubOrg).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get organization by login",
			zap.String("github_org", githubOrg),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}

func (r *organizationRepository) Create(ctx context.Context, org *model.Organization) error {
	if err := conn(ctx, r.db).Create(org).Error; err != nil {
		r.logger.Error("Failed to create organization",
			zap.String("github_org", org.GithubOrg),
			zap.Error(err))
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

func (r *organizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := conn(ctx, r.db).Save(org).Error; err != nil {
		r.logger.Error("Failed to update organization", zap.Uint("id", org.ID), zap.Error(err))
		return fmt.Errorf("failed to update organization: %w", err)
	}
	return nil
}

func (r *organizationRepository) Delete(ctx context.Context, id uint) error {
	if err := conn(ctx, r.db).Delete(&model.Organization{}, id).Error; err != nil {
		r.logger.Error("Failed to delete organization", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}
