package mapper

import (
	"time"

	"gorm.io/datatypes"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// EventFromRequest builds an MCP event, stamping now when no timestamp is given.
func EventFromRequest(req *dto.EventRequest, now time.Time) *model.MCPEvent {
	ts := now.UTC()
	if req.EventTimestamp != nil {
		ts = req.EventTimestamp.UTC()
	}
	data := datatypes.JSONMap(req.EventData)
	if data == nil {
		data = datatypes.JSONMap{}
	}
	return &model.MCPEvent{
		EventType:      req.EventType,
		GithubUsername: req.GithubUsername,
		Repository:     req.Repository,
		EventData:      data,
		EventTimestamp: ts,
	}
}

func EventToResponse(event *model.MCPEvent) *dto.EventResponse {
	data := map[string]interface{}(event.EventData)
	if data == nil {
		data = map[string]interface{}{}
	}
	return &dto.EventResponse{
		ID:             event.ID,
		EventType:      event.EventType,
		GithubUsername: event.GithubUsername,
		Repository:     event.Repository,
		EventData:      data,
		EventTimestamp: event.EventTimestamp,
	}
}

func EventsToResponses(events []*model.MCPEvent) []*dto.EventResponse {
	out := make([]*dto.EventResponse, len(events))
	for i, event := range events {
		out[i] = EventToResponse(event)
	}
	return out
}

func EventStatsToResponse(stats *entity.EventStats) *dto.EventMetricsResponse {
	byType := stats.ByType
	if byType == nil {
		byType = map[string]int64{}
	}
	return &dto.EventMetricsResponse{
		TotalEvents:        stats.Total,
		ByType:             byType,
		UniqueUsers:        stats.UniqueUsers,
		UniqueRepositories: stats.UniqueRepositories,
	}
}

// CodeMetricFromRequest builds a code quality record; modificationDate may be nil.
func CodeMetricFromRequest(req *dto.CodeMetricRequest, modificationDate *time.Time) *model.CodeQualityMetric {
	return &model.CodeQualityMetric{
		Repository:            req.Repository,
		CommitSHA:             req.CommitSHA,
		FilePath:              req.FilePath,
		IsAIGenerated:         req.IsAIGenerated,
		AILinesOriginal:       req.AILinesOriginal,
		LinesModified:         req.LinesModified,
		ModificationDate:      modificationDate,
		DaysUntilModification: req.DaysUntilModification,
		ModificationReason:    req.ModificationReason,
	}
}

func CodeMetricToResponse(m *model.CodeQualityMetric) *dto.CodeMetricResponse {
	return &dto.CodeMetricResponse{
		ID:                    m.ID,
		Repository:            m.Repository,
		CommitSHA:             m.CommitSHA,
		FilePath:              m.FilePath,
		IsAIGenerated:         m.IsAIGenerated,
		AILinesOriginal:       m.AILinesOriginal,
		LinesModified:         m.LinesModified,
		ModificationRate:      entity.Round(entity.Percent(m.LinesModified, m.AILinesOriginal), 2),
		ModificationDate:      m.ModificationDate,
		DaysUntilModification: m.DaysUntilModification,
		ModificationReason:    m.ModificationReason,
		CreatedAt:             m.CreatedAt,
	}
}

func CodeMetricsToResponses(rows []*model.CodeQualityMetric) []*dto.CodeMetricResponse {
	out := make([]*dto.CodeMetricResponse, len(rows))
	for i, m := range rows {
		out[i] = CodeMetricToResponse(m)
	}
	return out
}
