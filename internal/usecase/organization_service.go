package usecase

import (
	"context"
	"fmt"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// OrganizationService handles organization CRUD.
type OrganizationService struct {
	orgRepo      repository.OrganizationRepository
	userRepo     repository.UserRepository
	metricsRepo  repository.MetricsRepository
	activityRepo repository.ActivityRepository
	txManager    repository.TransactionManager
	logger       *zap.Logger
}

// NewOrganizationService creates a new OrganizationService instance
func NewOrganizationService(
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	metricsRepo repository.MetricsRepository,
	activityRepo repository.ActivityRepository,
	txManager repository.TransactionManager,
	logger *zap.Logger,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:      orgRepo,
		userRepo:     userRepo,
		metricsRepo:  metricsRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (s *OrganizationService) List(ctx context.Context) ([]*dto.OrganizationResponse, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.OrganizationsToResponses(orgs), nil
}

func (s *OrganizationService) Get(ctx context.Context, id uint) (*dto.OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domainErrors.ErrOrganizationNotFound
	}
	return mapper.OrganizationToResponse(org), nil
}

func (s *OrganizationService) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	existing, err := s.orgRepo.GetByGithubOrg(ctx, req.GithubOrg)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainErrors.ErrDuplicateOrganization
	}

	org := mapper.OrganizationFromCreate(req)
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	s.logger.Info("Organization created",
		zap.Uint("id", org.ID),
		zap.String("github_org", org.GithubOrg))

	return mapper.OrganizationToResponse(org), nil
}

func (s *OrganizationService) Update(ctx context.Context, id uint, req *dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domainErrors.ErrOrganizationNotFound
	}

	mapper.ApplyOrganizationUpdate(org, req)
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return mapper.OrganizationToResponse(org), nil
}

// Delete removes the organization with its users, their activity and its daily metrics.
func (s *OrganizationService) Delete(ctx context.Context, id uint) error {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if org == nil {
		return domainErrors.ErrOrganizationNotFound
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.activityRepo.DeleteForOrganization(ctx, id); err != nil {
			return err
		}
		if err := s.userRepo.DeleteByOrganization(ctx, id); err != nil {
			return err
		}
		if err := s.metricsRepo.DeleteByOrganization(ctx, id); err != nil {
			return err
		}
		return s.orgRepo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	s.logger.Info("Organization deleted",
		zap.Uint("id", id),
		zap.String("github_org", org.GithubOrg))
	return nil
}
