package mapper

import (
	"time"

	"gorm.io/datatypes"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// DefaultOrganizationID is used when a created user names no organization.
const DefaultOrganizationID uint = 1

// UserFromCreate builds a new user. copilot_enabled wins over its is_active alias;
// with neither set the user is not enabled. The level is reconciled with enablement
// and the activity flags start from it.
func UserFromCreate(req *dto.CreateUserRequest, now time.Time) *model.User {
	orgID := DefaultOrganizationID
	if req.OrganizationID != nil && *req.OrganizationID != 0 {
		orgID = *req.OrganizationID
	}

	enabled := false
	switch {
	case req.CopilotEnabled != nil:
		enabled = *req.CopilotEnabled
	case req.IsActive != nil:
		enabled = *req.IsActive
	}

	level := entity.LevelNotEnabled
	if req.MaturityLevel != nil {
		level = entity.MaturityLevel(*req.MaturityLevel)
	}
	level = entity.ReconcileLevel(enabled, level)

	user := &model.User{
		GithubUsername:  req.GithubUsername,
		OrganizationID:  orgID,
		Name:            req.GithubUsername,
		MaturityLevel:   int(level),
		CopilotEnabled:  enabled,
		IsWeeklyActive:  level >= entity.LevelActive,
		IsMonthlyActive: level >= entity.LevelEnabled,
	}
	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Team != nil {
		user.Team = *req.Team
	}
	if enabled {
		day := entity.Day(now)
		user.CopilotEnabledDate = &day
	}
	return user
}

// ApplyUserUpdate copies the set fields of req onto user. is_active is applied
// as copilot_enabled unless copilot_enabled itself is present. The resulting
// level is reconciled with enablement, so disabling a user drops them to L0.
func ApplyUserUpdate(user *model.User, req *dto.UpdateUserRequest, now time.Time) {
	if req.GithubUsername != nil {
		user.GithubUsername = *req.GithubUsername
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Team != nil {
		user.Team = *req.Team
	}
	if req.MaturityLevel != nil {
		user.MaturityLevel = *req.MaturityLevel
	}

	enabled := req.CopilotEnabled
	if enabled == nil {
		enabled = req.IsActive
	}
	if enabled != nil {
		if *enabled && !user.CopilotEnabled && user.CopilotEnabledDate == nil {
			day := entity.Day(now)
			user.CopilotEnabledDate = &day
		}
		user.CopilotEnabled = *enabled
	}

	if req.IsWeeklyActive != nil {
		user.IsWeeklyActive = *req.IsWeeklyActive
	}
	if req.IsMonthlyActive != nil {
		user.IsMonthlyActive = *req.IsMonthlyActive
	}

	user.MaturityLevel = int(entity.ReconcileLevel(user.CopilotEnabled, entity.MaturityLevel(user.MaturityLevel)))
}

func UserToResponse(user *model.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                 user.ID,
		GithubUsername:     user.GithubUsername,
		OrganizationID:     user.OrganizationID,
		Name:               user.Name,
		Email:              user.Email,
		Team:               user.Team,
		MaturityLevel:      user.MaturityLevel,
		CopilotEnabled:     user.CopilotEnabled,
		CopilotEnabledDate: user.CopilotEnabledDate,
		IsWeeklyActive:     user.IsWeeklyActive,
		IsMonthlyActive:    user.IsMonthlyActive,
		IsActive:           user.CopilotEnabled,
		LastActivityDate:   user.LastActivityDate,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

func UsersToResponses(users []*model.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		out[i] = UserToResponse(user)
	}
	return out
}

// ActivityFromRequest builds a new activity row for userID on date.
func ActivityFromRequest(userID uint, date time.Time, req *dto.ActivityRequest) *model.UserActivityLog {
	log := &model.UserActivityLog{UserID: userID, Date: entity.Day(date)}
	ApplyActivityRequest(log, req)
	return log
}

// ApplyActivityRequest overwrites the counters of log with req.
func ApplyActivityRequest(log *model.UserActivityLog, req *dto.ActivityRequest) {
	features := req.FeaturesUsed
	if features == nil {
		features = []string{}
	}
	log.SuggestionsShown = req.SuggestionsShown
	log.SuggestionsAccepted = req.SuggestionsAccepted
	log.LinesSuggested = req.LinesSuggested
	log.LinesAccepted = req.LinesAccepted
	log.ChatInteractions = req.ChatInteractions
	log.FeaturesUsed = datatypes.NewJSONType(features)
	log.CommitsCount = req.CommitsCount
	log.AIAssistedCommits = req.AIAssistedCommits
	log.PRsCreated = req.PRsCreated
	log.AIAssistedPRs = req.AIAssistedPRs
}

func ActivityToResponse(log *model.UserActivityLog) *dto.ActivityResponse {
	features := log.FeaturesUsed.Data()
	if features == nil {
		features = []string{}
	}
	return &dto.ActivityResponse{
		ID:                  log.ID,
		UserID:              log.UserID,
		Date:                log.Date.Format(dto.DateLayout),
		SuggestionsShown:    log.SuggestionsShown,
		SuggestionsAccepted: log.SuggestionsAccepted,
		AcceptanceRate:      entity.Round(entity.Percent(log.SuggestionsAccepted, log.SuggestionsShown), 2),
		LinesSuggested:      log.LinesSuggested,
		LinesAccepted:       log.LinesAccepted,
		ChatInteractions:    log.ChatInteractions,
		FeaturesUsed:        features,
		CommitsCount:        log.CommitsCount,
		AIAssistedCommits:   log.AIAssistedCommits,
		PRsCreated:          log.PRsCreated,
		AIAssistedPRs:       log.AIAssistedPRs,
	}
}

func ActivitiesToResponses(logs []*model.UserActivityLog) []*dto.ActivityResponse {
	out := make([]*dto.ActivityResponse, len(logs))
	for i, log := range logs {
		out[i] = ActivityToResponse(log)
	}
	return out
}

// ActivityDays projects activity rows onto the classifier input.
func ActivityDays(logs []*model.UserActivityLog) []entity.ActivityDay {
	out := make([]entity.ActivityDay, len(logs))
	for i, log := range logs {
		out[i] = entity.ActivityDay{
			Date:                log.Date,
			SuggestionsShown:    log.SuggestionsShown,
			SuggestionsAccepted: log.SuggestionsAccepted,
		}
	}
	return out
}
