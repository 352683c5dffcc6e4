package repository

import (
	"context"
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// ActivityRepository defines storage operations for per-user daily activity.
type ActivityRepository interface {
	// ListForUser returns a user's rows with date >= since, newest first.
	ListForUser(ctx context.Context, userID uint, since time.Time) ([]*model.UserActivityLog, error)
	// ListForOrganization returns rows with date >= since for every user of orgID (all users when nil).
	ListForOrganization(ctx context.Context, orgID *uint, since time.Time) ([]*model.UserActivityLog, error)
	GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*model.UserActivityLog, error)
	Create(ctx context.Context, log *model.UserActivityLog) error
	Update(ctx context.Context, log *model.UserActivityLog) error
	DeleteForUser(ctx context.Context, userID uint) error
	DeleteForOrganization(ctx context.Context, orgID uint) error
}
