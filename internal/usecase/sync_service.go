package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/mapper"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	domainErrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/errors"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/provider"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/repository"
	apperrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/errors"
)

// Sync outcomes reported to a SyncRecorder.
const (
	SyncStatusSuccess  = "success"
	SyncStatusWarnings = "warnings"
	SyncStatusFailed   = "failed"
)

// SyncRecorder observes finished sync runs.
type SyncRecorder interface {
	ObserveSync(status string, duration time.Duration, usersSynced, metricsSynced int)
}

type nopSyncRecorder struct{}

func (nopSyncRecorder) ObserveSync(string, time.Duration, int, int) {}

// SyncConfig tunes how synced members are stored.
type SyncConfig struct {
	// EmailDomain replaces the organization login in placeholder emails.
	EmailDomain string
}

// SyncService pulls organization, seat and usage data from GitHub into the store.
type SyncService struct {
	factory     provider.Factory
	orgRepo     repository.OrganizationRepository
	userRepo    repository.UserRepository
	metricsRepo repository.MetricsRepository
	maturity    *MaturityService
	txManager   repository.TransactionManager
	recorder    SyncRecorder
	config      SyncConfig
	logger      *zap.Logger
	now         func() time.Time
}

// NewSyncService creates a new SyncService instance
func NewSyncService(
	factory provider.Factory,
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	metricsRepo repository.MetricsRepository,
	maturity *MaturityService,
	txManager repository.TransactionManager,
	recorder SyncRecorder,
	config SyncConfig,
	logger *zap.Logger,
) *SyncService {
	if recorder == nil {
		recorder = nopSyncRecorder{}
	}
	return &SyncService{
		factory:     factory,
		orgRepo:     orgRepo,
		userRepo:    userRepo,
		metricsRepo: metricsRepo,
		maturity:    maturity,
		txManager:   txManager,
		recorder:    recorder,
		config:      config,
		logger:      logger,
		now:         time.Now,
	}
}

// syncRun carries the state of one Sync call.
type syncRun struct {
	id       string
	req      *dto.SyncRequest
	source   provider.CopilotDataSource
	org      *model.Organization
	warnings []string
	logger   *zap.Logger
}

func (r *syncRun) warn(err *domainErrors.SyncError) {
	r.logger.Warn("Sync step degraded",
		zap.String("step", err.Step),
		zap.Error(err))
	r.warnings = append(r.warnings, err.Message)
}

// Sync runs organization, users, metrics and maturity steps in order.
// Member listing and persistence failures abort the sync; billing, seats,
// profiles and usage failures are reported as warnings.
func (s *SyncService) Sync(ctx context.Context, req *dto.SyncRequest) (*dto.SyncResponse, error) {
	req.SetDefaults()
	started := s.now()

	run := &syncRun{
		id:       uuid.NewString(),
		req:      req,
		source:   s.factory.New(req.Token),
		warnings: []string{},
	}
	run.logger = s.logger.With(zap.String("sync_id", run.id), zap.String("org", req.Org))
	run.logger.Info("GitHub sync started",
		zap.Bool("sync_users", *req.SyncUsers),
		zap.Bool("sync_metrics", *req.SyncMetrics),
		zap.Int("days", req.Days))

	resp, err := s.sync(ctx, run)
	if err != nil {
		s.recorder.ObserveSync(SyncStatusFailed, time.Since(started), 0, 0)
		run.logger.Error("GitHub sync failed", zap.Error(err))
		return nil, apperrors.NewAppError(apperrors.ErrUpstreamFailed, "GitHub sync failed", err)
	}

	status := SyncStatusSuccess
	if len(resp.Warnings) > 0 {
		status = SyncStatusWarnings
	}
	s.recorder.ObserveSync(status, time.Since(started), resp.UsersSynced, resp.MetricsSynced)

	run.logger.Info("GitHub sync finished",
		zap.Int("users_synced", resp.UsersSynced),
		zap.Int("metrics_synced", resp.MetricsSynced),
		zap.Int("warnings", len(resp.Warnings)))
	return resp, nil
}

func (s *SyncService) sync(ctx context.Context, run *syncRun) (*dto.SyncResponse, error) {
	if err := s.syncOrganization(ctx, run); err != nil {
		return nil, err
	}

	resp := &dto.SyncResponse{
		Success: true,
		SyncID:  run.id,
		OrgName: run.org.Name,
	}

	if *run.req.SyncUsers {
		n, err := s.syncUsers(ctx, run)
		if err != nil {
			return nil, err
		}
		resp.UsersSynced = n
	}

	if *run.req.SyncMetrics {
		n, err := s.syncMetrics(ctx, run)
		if err != nil {
			return nil, err
		}
		resp.MetricsSynced = n
	}

	recomputed, err := s.maturity.Recompute(ctx, &run.org.ID)
	if err != nil {
		run.warn(domainErrors.NewPersistError(run.req.Org, "maturity levels", err))
	} else {
		resp.MaturityDistribution = recomputed.Distribution
	}

	resp.Warnings = run.warnings
	resp.Message = "Sync completed successfully"
	if len(run.warnings) > 0 {
		resp.Message = "Sync completed with warnings"
	}
	return resp, nil
}

// syncOrganization upserts the organization; seat counts are kept when billing is unavailable.
func (s *SyncService) syncOrganization(ctx context.Context, run *syncRun) error {
	billing, err := run.source.GetBilling(ctx, run.req.Org)
	if err != nil {
		run.warn(domainErrors.NewBillingUnavailableError(run.req.Org, err))
		billing = nil
	}

	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		org, err := s.orgRepo.GetByGithubOrg(ctx, run.req.Org)
		if err != nil {
			return domainErrors.NewPersistError(run.req.Org, "organization", err)
		}

		if org == nil {
			org = &model.Organization{
				GithubOrg: run.req.Org,
				Name:      DisplayName(run.req.Org),
			}
			if billing != nil {
				org.TotalSeats = billing.TotalSeats
				org.CopilotSeats = billing.ActiveThisCycle
			}
			if err := s.orgRepo.Create(ctx, org); err != nil {
				return domainErrors.NewPersistError(run.req.Org, "organization", err)
			}
		} else if billing != nil {
			org.TotalSeats = billing.TotalSeats
			org.CopilotSeats = billing.ActiveThisCycle
			if err := s.orgRepo.Update(ctx, org); err != nil {
				return domainErrors.NewPersistError(run.req.Org, "organization", err)
			}
		}

		run.org = org
		return nil
	})
}

func (s *SyncService) syncUsers(ctx context.Context, run *syncRun) (int, error) {
	org := run.req.Org

	members, err := run.source.ListMembers(ctx, org)
	if err != nil {
		return 0, domainErrors.NewMembersFetchError(org, err)
	}

	seats := make(map[string]provider.Seat)
	list, err := run.source.ListSeats(ctx, org)
	if err != nil {
		run.warn(domainErrors.NewSeatsUnavailableError(org, err))
	}
	for _, seat := range list {
		seats[strings.ToLower(seat.Login)] = seat
	}

	profiles := make(map[string]*provider.Profile)
	if run.req.WithProfiles {
		failed := 0
		var lastErr error
		for _, member := range members {
			profile, err := run.source.GetProfile(ctx, member.Login)
			if err != nil {
				failed++
				lastErr = err
				continue
			}
			profiles[member.Login] = profile
		}
		if failed > 0 {
			run.warn(domainErrors.NewProfileUnavailableError(org, fmt.Sprintf("%d members", failed), lastErr))
		}
	}

	now := s.now()
	synced := 0
	var foreign []string
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		synced, foreign = 0, nil
		for _, member := range members {
			seat, hasSeat := seats[strings.ToLower(member.Login)]
			stored, err := s.upsertMember(ctx, run, member, seat, hasSeat, profiles[member.Login], now)
			if err != nil {
				return domainErrors.NewPersistError(org, "user "+member.Login, err)
			}
			if !stored {
				foreign = append(foreign, member.Login)
				continue
			}
			synced++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(foreign) > 0 {
		run.warn(domainErrors.NewMembershipConflictError(org, foreign))
	}
	return synced, nil
}

// upsertMember creates or refreshes one member of the synced organization.
// It reports false without writing when the username is stored under another organization.
func (s *SyncService) upsertMember(
	ctx context.Context,
	run *syncRun,
	member provider.Member,
	seat provider.Seat,
	hasSeat bool,
	profile *provider.Profile,
	now time.Time,
) (bool, error) {
	user, err := s.userRepo.GetByUsername(ctx, member.Login)
	if err != nil {
		return false, err
	}

	if user == nil {
		user = &model.User{
			GithubUsername: member.Login,
			OrganizationID: run.org.ID,
			Name:           member.Login,
			Email:          s.placeholderEmail(member.Login, run.req.Org),
			Team:           entity.UnassignedTeam,
		}
		applySeat(user, seat, hasSeat, now)
		user.MaturityLevel = int(entity.ReconcileLevel(hasSeat, entity.LevelNotEnabled))
		applyProfile(user, profile)
		return true, s.userRepo.Create(ctx, user)
	}

	if user.OrganizationID != run.org.ID {
		run.logger.Warn("Member belongs to another organization",
			zap.String("github_username", user.GithubUsername),
			zap.Uint("organization_id", user.OrganizationID),
			zap.Uint("synced_organization_id", run.org.ID))
		return false, nil
	}
	applySeat(user, seat, hasSeat, now)
	user.MaturityLevel = int(entity.ReconcileLevel(hasSeat, entity.MaturityLevel(user.MaturityLevel)))
	applyProfile(user, profile)
	return true, s.userRepo.Update(ctx, user)
}

func applySeat(user *model.User, seat provider.Seat, hasSeat bool, now time.Time) {
	user.CopilotEnabled = hasSeat
	if !hasSeat {
		return
	}
	if user.CopilotEnabledDate == nil {
		enabled := entity.Day(now)
		if seat.CreatedAt != nil {
			enabled = entity.Day(*seat.CreatedAt)
		}
		user.CopilotEnabledDate = &enabled
	}
	if seat.LastActivityAt != nil {
		last := entity.Day(*seat.LastActivityAt)
		if user.LastActivityDate == nil || last.After(*user.LastActivityDate) {
			user.LastActivityDate = &last
		}
	}
}

func applyProfile(user *model.User, profile *provider.Profile) {
	if profile == nil {
		return
	}
	if profile.Name != "" {
		user.Name = profile.Name
	}
	if profile.Email != "" {
		user.Email = profile.Email
	}
}

func (s *SyncService) placeholderEmail(login, org string) string {
	domain := s.config.EmailDomain
	if domain == "" {
		domain = org + ".com"
	}
	return login + "@" + domain
}

// syncMetrics upserts one daily row per usage day. Only usage columns are written,
// so manually entered values on existing rows survive.
func (s *SyncService) syncMetrics(ctx context.Context, run *syncRun) (int, error) {
	org := run.req.Org
	until := entity.Day(s.now())
	since := until.AddDate(0, 0, -run.req.Days)

	usage, err := run.source.GetUsage(ctx, org, since, until)
	if err != nil {
		run.warn(domainErrors.NewUsageUnavailableError(org, err))
		return 0, nil
	}

	synced := 0
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, day := range usage {
			date := entity.Day(day.Day)
			row, err := s.metricsRepo.GetByOrgAndDate(ctx, run.org.ID, date)
			if err != nil {
				return domainErrors.NewPersistError(org, "daily metrics", err)
			}

			if row == nil {
				row = &model.DailyMetrics{OrganizationID: run.org.ID, Date: date}
				ApplyUsage(row, day)
				err = s.metricsRepo.Create(ctx, row)
			} else {
				ApplyUsage(row, day)
				err = s.metricsRepo.Update(ctx, row)
			}
			if err != nil {
				return domainErrors.NewPersistError(org, "daily metrics", err)
			}
			synced++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return synced, nil
}

// ApplyUsage copies one usage day onto row and refreshes the derived rates.
// Breakdown maps count accepted suggestions per language and per editor.
func ApplyUsage(row *model.DailyMetrics, day provider.UsageDay) {
	row.ActiveUsers = day.TotalActiveUsers
	row.TotalSuggestionsShown = day.TotalSuggestionsCount
	row.TotalSuggestionsAccepted = day.TotalAcceptancesCount
	row.TotalLinesSuggested = day.TotalLinesSuggested
	row.TotalLinesAccepted = day.TotalLinesAccepted
	row.TotalChatInteractions = day.TotalChatTurns

	languages := make(map[string]int)
	editors := make(map[string]int)
	for _, b := range day.Breakdown {
		if b.Language != "" {
			languages[b.Language] += b.AcceptancesCount
		}
		if b.Editor != "" {
			editors[b.Editor] += b.AcceptancesCount
		}
	}
	row.LanguageBreakdown = model.NewBreakdown(languages)
	row.EditorBreakdown = model.NewBreakdown(editors)

	mapper.RefreshRates(row)
}

// TestConnection lists the organization's members to check the token and org.
func (s *SyncService) TestConnection(ctx context.Context, token, org string) (*dto.TestConnectionResponse, error) {
	members, err := s.factory.New(token).ListMembers(ctx, org)
	if err != nil {
		s.logger.Warn("GitHub connection test failed", zap.String("org", org), zap.Error(err))
		return nil, apperrors.NewAppError(apperrors.ErrUpstreamFailed, "GitHub connection failed", err)
	}

	return &dto.TestConnectionResponse{
		Success:      true,
		Message:      "Successfully connected to " + org,
		MembersCount: len(members),
	}, nil
}

// DisplayName title-cases an organization login ("my-org" becomes "My-Org").
func DisplayName(login string) string {
	return cases.Title(language.Und).String(login)
}
