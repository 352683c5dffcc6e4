package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/provider"
)

// passthroughTx runs fn directly on the caller's context.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockOrganizationRepository is a mock implementation of OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) List(ctx context.Context) ([]*model.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetByID(ctx context.Context, id uint) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetByGithubOrg(ctx context.Context, githubOrg string) (*model.Organization, error) {
	args := m.Called(ctx, githubOrg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, filter entity.UserFilter) ([]*model.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByOrganization(ctx context.Context, orgID uint) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateMaturity(ctx context.Context, id uint, update entity.MaturityUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockUserRepository) Counts(ctx context.Context, orgID *uint) (*entity.UserCounts, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserCounts), args.Error(1)
}

func (m *MockUserRepository) CountByMaturity(ctx context.Context, orgID *uint) (map[int]int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(map[int]int64), args.Error(1)
}

func (m *MockUserRepository) TeamStats(ctx context.Context, orgID *uint) ([]entity.TeamStat, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]entity.TeamStat), args.Error(1)
}

// MockMetricsRepository is a mock implementation of MetricsRepository
type MockMetricsRepository struct {
	mock.Mock
}

func (m *MockMetricsRepository) List(ctx context.Context, filter entity.MetricsFilter) ([]*model.DailyMetrics, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*model.DailyMetrics), args.Error(1)
}

func (m *MockMetricsRepository) Latest(ctx context.Context, orgID *uint) (*model.DailyMetrics, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailyMetrics), args.Error(1)
}

func (m *MockMetricsRepository) GetByID(ctx context.Context, id uint) (*model.DailyMetrics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailyMetrics), args.Error(1)
}

func (m *MockMetricsRepository) GetByOrgAndDate(ctx context.Context, orgID uint, date time.Time) (*model.DailyMetrics, error) {
	args := m.Called(ctx, orgID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailyMetrics), args.Error(1)
}

func (m *MockMetricsRepository) Create(ctx context.Context, metrics *model.DailyMetrics) error {
	args := m.Called(ctx, metrics)
	return args.Error(0)
}

func (m *MockMetricsRepository) Update(ctx context.Context, metrics *model.DailyMetrics) error {
	args := m.Called(ctx, metrics)
	return args.Error(0)
}

func (m *MockMetricsRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMetricsRepository) DeleteByOrganization(ctx context.Context, orgID uint) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}

func (m *MockMetricsRepository) SumCommits(ctx context.Context, filter entity.MetricsFilter) (*entity.CommitTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommitTotals), args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) ListForUser(ctx context.Context, userID uint, since time.Time) ([]*model.UserActivityLog, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).([]*model.UserActivityLog), args.Error(1)
}

func (m *MockActivityRepository) ListForOrganization(ctx context.Context, orgID *uint, since time.Time) ([]*model.UserActivityLog, error) {
	args := m.Called(ctx, orgID, since)
	return args.Get(0).([]*model.UserActivityLog), args.Error(1)
}

func (m *MockActivityRepository) GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*model.UserActivityLog, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserActivityLog), args.Error(1)
}

func (m *MockActivityRepository) Create(ctx context.Context, log *model.UserActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockActivityRepository) Update(ctx context.Context, log *model.UserActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteForOrganization(ctx context.Context, orgID uint) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}

// MockKPIRepository is a mock implementation of KPIRepository
type MockKPIRepository struct {
	mock.Mock
}

func (m *MockKPIRepository) List(ctx context.Context) ([]*model.KPI, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.KPI), args.Error(1)
}

func (m *MockKPIRepository) GetByID(ctx context.Context, id uint) (*model.KPI, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.KPI), args.Error(1)
}

func (m *MockKPIRepository) GetByName(ctx context.Context, name string) (*model.KPI, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.KPI), args.Error(1)
}

func (m *MockKPIRepository) Create(ctx context.Context, kpi *model.KPI) error {
	args := m.Called(ctx, kpi)
	return args.Error(0)
}

func (m *MockKPIRepository) Update(ctx context.Context, kpi *model.KPI) error {
	args := m.Called(ctx, kpi)
	return args.Error(0)
}

func (m *MockKPIRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCopilotDataSource is a mock implementation of CopilotDataSource
type MockCopilotDataSource struct {
	mock.Mock
}

func (m *MockCopilotDataSource) ListMembers(ctx context.Context, org string) ([]provider.Member, error) {
	args := m.Called(ctx, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.Member), args.Error(1)
}

func (m *MockCopilotDataSource) GetBilling(ctx context.Context, org string) (*provider.Billing, error) {
	args := m.Called(ctx, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Billing), args.Error(1)
}

func (m *MockCopilotDataSource) ListSeats(ctx context.Context, org string) ([]provider.Seat, error) {
	args := m.Called(ctx, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.Seat), args.Error(1)
}

func (m *MockCopilotDataSource) GetUsage(ctx context.Context, org string, since, until time.Time) ([]provider.UsageDay, error) {
	args := m.Called(ctx, org, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.UsageDay), args.Error(1)
}

func (m *MockCopilotDataSource) GetProfile(ctx context.Context, username string) (*provider.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Profile), args.Error(1)
}

// staticFactory hands out the same data source for every token.
type staticFactory struct {
	source provider.CopilotDataSource
	tokens []string
}

func (f *staticFactory) New(token string) provider.CopilotDataSource {
	f.tokens = append(f.tokens, token)
	return f.source
}

func uintPtr(v uint) *uint {
	return &v
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
