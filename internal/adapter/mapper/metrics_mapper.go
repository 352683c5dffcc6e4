package mapper

import (
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// AcceptanceRate derives accepted/shown as a percentage, 0 when nothing was shown.
func AcceptanceRate(m *model.DailyMetrics) float64 {
	return entity.Round(entity.Percent(m.TotalSuggestionsAccepted, m.TotalSuggestionsShown), 2)
}

// ActivationRate derives active/enabled users as a percentage, 0 when nobody is enabled.
func ActivationRate(m *model.DailyMetrics) float64 {
	return entity.Round(entity.Percent(m.ActiveUsers, m.EnabledUsers), 2)
}

// MetricsFromRequest builds a new row for (req.OrganizationID, date).
func MetricsFromRequest(req *dto.MetricsRequest, date time.Time) *model.DailyMetrics {
	m := &model.DailyMetrics{
		OrganizationID: req.OrganizationID,
		Date:           entity.Day(date),
	}
	ApplyMetricsRequest(m, req)
	return m
}

// ApplyMetricsRequest overwrites every counter of m with req and refreshes the derived rates.
// The (organization, date) key of m is left unchanged.
func ApplyMetricsRequest(m *model.DailyMetrics, req *dto.MetricsRequest) {
	m.TotalUsers = req.TotalUsers
	m.EnabledUsers = req.EnabledUsers
	m.ActiveUsers = req.ActiveUsers
	m.WeeklyActiveUsers = req.WeeklyActiveUsers
	m.MonthlyActiveUsers = req.MonthlyActiveUsers
	m.PromptsPerUser = req.PromptsPerUser
	m.FeaturesUtilized = req.FeaturesUtilized
	m.TeamActivationRate = req.TeamActivationRate

	m.L0Count = req.L0Count
	m.L1Count = req.L1Count
	m.L2Count = req.L2Count
	m.L3Count = req.L3Count
	m.L4Count = req.L4Count
	m.L5Count = req.L5Count

	m.TotalSuggestionsShown = req.TotalSuggestionsShown
	m.TotalSuggestionsAccepted = req.TotalSuggestionsAccepted
	m.TotalLinesSuggested = req.TotalLinesSuggested
	m.TotalLinesAccepted = req.TotalLinesAccepted
	m.TotalChatInteractions = req.TotalChatInteractions
	m.AIAssistedCommits = req.AIAssistedCommits
	m.AIAssistedPRs = req.AIAssistedPRs
	m.TotalCommits = req.TotalCommits
	m.TotalPRs = req.TotalPRs
	m.AICodeLines = req.AICodeLines
	m.AvgTimeToFirstCommit = req.AvgTimeToFirstCommit
	m.AvgPRCycleTime = req.AvgPRCycleTime

	m.AICodeRetentionRate = req.AICodeRetentionRate
	m.AICodeModificationRate = req.AICodeModificationRate
	m.AICodeBugRate = req.AICodeBugRate
	m.PRRejectionRate = req.PRRejectionRate
	m.AvgReviewComments = req.AvgReviewComments

	m.LanguageBreakdown = model.NewBreakdown(req.LanguageBreakdown)
	m.EditorBreakdown = model.NewBreakdown(req.EditorBreakdown)

	RefreshRates(m)
}

// RefreshRates recomputes the stored rate columns from the counts.
func RefreshRates(m *model.DailyMetrics) {
	m.AcceptanceRate = AcceptanceRate(m)
	m.ActivationRate = ActivationRate(m)
}

// BreakdownMap returns the map held by b, never nil.
func BreakdownMap(b model.Breakdown) map[string]int {
	data := b.Data()
	if data == nil {
		return map[string]int{}
	}
	return data
}

// MetricsToResponse renders m with acceptance and activation rates derived from counts.
func MetricsToResponse(m *model.DailyMetrics) *dto.MetricsResponse {
	if m == nil {
		return nil
	}
	return &dto.MetricsResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Date:           m.Date.Format(dto.DateLayout),

		TotalUsers:         m.TotalUsers,
		EnabledUsers:       m.EnabledUsers,
		ActiveUsers:        m.ActiveUsers,
		WeeklyActiveUsers:  m.WeeklyActiveUsers,
		MonthlyActiveUsers: m.MonthlyActiveUsers,
		ActivationRate:     ActivationRate(m),
		PromptsPerUser:     m.PromptsPerUser,
		FeaturesUtilized:   m.FeaturesUtilized,
		TeamActivationRate: m.TeamActivationRate,

		L0Count: m.L0Count,
		L1Count: m.L1Count,
		L2Count: m.L2Count,
		L3Count: m.L3Count,
		L4Count: m.L4Count,
		L5Count: m.L5Count,

		TotalSuggestionsShown:    m.TotalSuggestionsShown,
		TotalSuggestionsAccepted: m.TotalSuggestionsAccepted,
		AcceptanceRate:           AcceptanceRate(m),
		TotalLinesSuggested:      m.TotalLinesSuggested,
		TotalLinesAccepted:       m.TotalLinesAccepted,
		TotalChatInteractions:    m.TotalChatInteractions,
		AIAssistedCommits:        m.AIAssistedCommits,
		AIAssistedPRs:            m.AIAssistedPRs,
		TotalCommits:             m.TotalCommits,
		TotalPRs:                 m.TotalPRs,
		AICodeLines:              m.AICodeLines,
		AvgTimeToFirstCommit:     m.AvgTimeToFirstCommit,
		AvgPRCycleTime:           m.AvgPRCycleTime,

		AICodeRetentionRate:    m.AICodeRetentionRate,
		AICodeModificationRate: m.AICodeModificationRate,
		AICodeBugRate:          m.AICodeBugRate,
		PRRejectionRate:        m.PRRejectionRate,
		AvgReviewComments:      m.AvgReviewComments,

		LanguageBreakdown: BreakdownMap(m.LanguageBreakdown),
		EditorBreakdown:   BreakdownMap(m.EditorBreakdown),

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func MetricsToResponses(rows []*model.DailyMetrics) []*dto.MetricsResponse {
	out := make([]*dto.MetricsResponse, len(rows))
	for i, m := range rows {
		out[i] = MetricsToResponse(m)
	}
	return out
}

// MetricsToTrendPoint renders one day of the dashboard trend series.
func MetricsToTrendPoint(m *model.DailyMetrics) dto.TrendPoint {
	return dto.TrendPoint{
		Date:                m.Date.Format(dto.DateLayout),
		ActiveUsers:         m.ActiveUsers,
		ActivationRate:      ActivationRate(m),
		WeeklyActiveUsers:   m.WeeklyActiveUsers,
		AcceptanceRate:      AcceptanceRate(m),
		SuggestionsShown:    m.TotalSuggestionsShown,
		SuggestionsAccepted: m.TotalSuggestionsAccepted,
		ChatInteractions:    m.TotalChatInteractions,
		AIAssistedCommits:   m.AIAssistedCommits,
		AICodeLines:         m.AICodeLines,
		CodeRetentionRate:   m.AICodeRetentionRate,
		ModificationRate:    m.AICodeModificationRate,
	}
}
