package repository

import (
	"context"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// EventRepository stores MCP events and code quality records.
type EventRepository interface {
	Create(ctx context.Context, event *model.MCPEvent) error
	// List returns events matching filter, newest first.
	List(ctx context.Context, filter entity.EventFilter) ([]*model.MCPEvent, error)
	Stats(ctx context.Context, since, until *time.Time) (*entity.EventStats, error)
}

// CodeQualityRepository stores code quality records.
type CodeQualityRepository interface {
	Create(ctx context.Context, metric *model.CodeQualityMetric) error
	// List returns records created at or after since, optionally for one repository, newest first.
	List(ctx context.Context, repository string, since time.Time) ([]*model.CodeQualityMetric, error)
}
