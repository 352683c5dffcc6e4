package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

// MaturityService reclassifies users from their trailing activity.
type MaturityService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewMaturityService creates a new MaturityService instance
func NewMaturityService(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	logger *zap.Logger,
) *MaturityService {
	return &MaturityService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Recompute reclassifies every user of orgID, or all users when orgID is nil.
func (s *MaturityService) Recompute(ctx context.Context, orgID *uint) (*dto.RecomputeResponse, error) {
	users, err := s.userRepo.List(ctx, entity.UserFilter{OrganizationID: orgID})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	today := entity.Day(s.now())
	logs, err := s.activityRepo.ListForOrganization(ctx, orgID, today.AddDate(0, 0, -entity.MaturityWindowDays))
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	byUser := make(map[uint][]*model.UserActivityLog)
	for _, log := range logs {
		byUser[log.UserID] = append(byUser[log.UserID], log)
	}

	updated := 0
	for _, user := range users {
		changed, err := s.apply(ctx, user, byUser[user.ID], today)
		if err != nil {
			return nil, err
		}
		if changed {
			updated++
		}
	}

	distribution, err := s.Distribution(ctx, orgID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Maturity recomputed",
		zap.Int("users", len(users)),
		zap.Int("users_updated", updated))

	return &dto.RecomputeResponse{
		UsersUpdated: updated,
		Distribution: distribution,
	}, nil
}

// RecomputeUser reclassifies a single user.
func (s *MaturityService) RecomputeUser(ctx context.Context, user *model.User) error {
	today := entity.Day(s.now())
	logs, err := s.activityRepo.ListForUser(ctx, user.ID, today.AddDate(0, 0, -entity.MaturityWindowDays))
	if err != nil {
		return fmt.Errorf("failed to list user activity: %w", err)
	}

	_, err = s.apply(ctx, user, logs, today)
	return err
}

func (s *MaturityService) apply(ctx context.Context, user *model.User, logs []*model.UserActivityLog, today time.Time) (bool, error) {
	summary := entity.SummarizeActivity(mapper.ActivityDays(logs), today, entity.MaturityWindowDays)
	update := entity.RecomputeMaturity(user.CopilotEnabled, summary)
	if update.LastActivity == nil {
		update.LastActivity = user.LastActivityDate
	}

	if int(update.Level) == user.MaturityLevel &&
		update.IsWeeklyActive == user.IsWeeklyActive &&
		update.IsMonthlyActive == user.IsMonthlyActive &&
		sameDay(update.LastActivity, user.LastActivityDate) {
		return false, nil
	}

	if err := s.userRepo.UpdateMaturity(ctx, user.ID, update); err != nil {
		return false, fmt.Errorf("failed to update maturity of %s: %w", user.GithubUsername, err)
	}

	s.logger.Debug("User maturity changed",
		zap.String("github_username", user.GithubUsername),
		zap.Int("from", user.MaturityLevel),
		zap.Int("to", int(update.Level)))

	user.MaturityLevel = int(update.Level)
	user.IsWeeklyActive = update.IsWeeklyActive
	user.IsMonthlyActive = update.IsMonthlyActive
	user.LastActivityDate = update.LastActivity
	return true, nil
}

// Distribution returns the user count of every level keyed "L0".."L5".
func (s *MaturityService) Distribution(ctx context.Context, orgID *uint) (map[string]int64, error) {
	counts, err := s.userRepo.CountByMaturity(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count maturity levels: %w", err)
	}

	distribution := make(map[string]int64, len(entity.Levels()))
	for _, info := range entity.Levels() {
		distribution[info.Name] = counts[int(info.Level)]
	}
	return distribution, nil
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return entity.Day(*a).Equal(entity.Day(*b))
}
