package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// UserService handles users, their activity log and user statistics.
type UserService struct {
	userRepo     repository.UserRepository
	orgRepo      repository.OrganizationRepository
	activityRepo repository.ActivityRepository
	maturity     *MaturityService
	txManager    repository.TransactionManager
	logger       *zap.Logger
	now          func() time.Time
}

// NewUserService creates a new UserService instance
func NewUserService(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	activityRepo repository.ActivityRepository,
	maturity *MaturityService,
	txManager repository.TransactionManager,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		activityRepo: activityRepo,
		maturity:     maturity,
		txManager:    txManager,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *UserService) List(ctx context.Context, filter entity.UserFilter) ([]*dto.UserResponse, error) {
	if filter.MaturityLevel != nil && !entity.MaturityLevel(*filter.MaturityLevel).Valid() {
		return nil, domainErrors.ErrInvalidMaturityLevel
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapper.UsersToResponses(users), nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.UserToResponse(user), nil
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if req.MaturityLevel != nil && !entity.MaturityLevel(*req.MaturityLevel).Valid() {
		return nil, domainErrors.ErrInvalidMaturityLevel
	}

	existing, err := s.userRepo.GetByUsername(ctx, req.GithubUsername)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainErrors.ErrDuplicateUser
	}

	user := mapper.UserFromCreate(req, s.now())

	org, err := s.orgRepo.GetByID(ctx, user.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domainErrors.ErrOrganizationRequired
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.Uint("id", user.ID),
		zap.String("github_username", user.GithubUsername),
		zap.Uint("organization_id", user.OrganizationID))

	return mapper.UserToResponse(user), nil
}

func (s *UserService) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if req.MaturityLevel != nil && !entity.MaturityLevel(*req.MaturityLevel).Valid() {
		return nil, domainErrors.ErrInvalidMaturityLevel
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.GithubUsername != nil && *req.GithubUsername != user.GithubUsername {
		other, err := s.userRepo.GetByUsername(ctx, *req.GithubUsername)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domainErrors.ErrDuplicateUser
		}
	}

	mapper.ApplyUserUpdate(user, req, s.now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return mapper.UserToResponse(user), nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return err
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.activityRepo.DeleteForUser(ctx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User deleted",
		zap.Uint("id", id),
		zap.String("github_username", user.GithubUsername))
	return nil
}

// TeamStats returns per-team user counts and average maturity.
func (s *UserService) TeamStats(ctx context.Context, orgID *uint) ([]*dto.TeamStatsResponse, error) {
	stats, err := s.userRepo.TeamStats(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TeamStatsResponse, len(stats))
	for i, st := range stats {
		out[i] = &dto.TeamStatsResponse{
			Team:        st.Team,
			Count:       st.Total,
			AvgMaturity: entity.Round(st.AvgMaturity, 1),
		}
	}
	return out, nil
}

// MaturityStats returns the user count of every populated level.
func (s *UserService) MaturityStats(ctx context.Context, orgID *uint) ([]*dto.MaturityStatsResponse, error) {
	counts, err := s.userRepo.CountByMaturity(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MaturityStatsResponse, 0, len(counts))
	for _, info := range entity.Levels() {
		count, ok := counts[int(info.Level)]
		if !ok {
			continue
		}
		out = append(out, &dto.MaturityStatsResponse{
			Level: int(info.Level),
			Name:  info.Level.Label(),
			Count: count,
		})
	}
	return out, nil
}

// RecomputeMaturity reclassifies users of orgID, or every user when nil.
func (s *UserService) RecomputeMaturity(ctx context.Context, orgID *uint) (*dto.RecomputeResponse, error) {
	if orgID != nil {
		org, err := s.orgRepo.GetByID(ctx, *orgID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, domainErrors.ErrOrganizationNotFound
		}
	}
	return s.maturity.Recompute(ctx, orgID)
}

// ListActivity returns a user's activity over the trailing window, newest first.
func (s *UserService) ListActivity(ctx context.Context, id uint, days int) ([]*dto.ActivityResponse, error) {
	if days <= 0 {
		return nil, domainErrors.ErrInvalidDays
	}
	if _, err := s.getUser(ctx, id); err != nil {
		return nil, err
	}

	logs, err := s.activityRepo.ListForUser(ctx, id, entity.WindowStart(s.now(), days))
	if err != nil {
		return nil, err
	}
	return mapper.ActivitiesToResponses(logs), nil
}

// RecordActivity upserts the user's row for req.Date and reclassifies the user.
// The bool result is true when a new row was created.
func (s *UserService) RecordActivity(ctx context.Context, id uint, req *dto.ActivityRequest) (*dto.ActivityResponse, bool, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, false, domainErrors.ErrInvalidDate
	}

	var (
		log     *model.UserActivityLog
		created bool
	)
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := s.getUser(ctx, id)
		if err != nil {
			return err
		}

		log, err = s.activityRepo.GetByUserAndDate(ctx, id, date)
		if err != nil {
			return err
		}
		if log == nil {
			log = mapper.ActivityFromRequest(id, date, req)
			created = true
			if err := s.activityRepo.Create(ctx, log); err != nil {
				return err
			}
		} else {
			mapper.ApplyActivityRequest(log, req)
			if err := s.activityRepo.Update(ctx, log); err != nil {
				return err
			}
		}

		return s.maturity.RecomputeUser(ctx, user)
	})
	if err != nil {
		return nil, false, err
	}

	return mapper.ActivityToResponse(log), created, nil
}

func (s *UserService) getUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainErrors.ErrUserNotFound
	}
	return user, nil
}
