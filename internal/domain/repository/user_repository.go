package repository

import (
	"context"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// UserRepository defines storage operations for users.
type UserRepository interface {
	// List returns users matching filter ordered by username.
	List(ctx context.Context, filter entity.UserFilter) ([]*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	// DeleteByOrganization removes every user of orgID.
	DeleteByOrganization(ctx context.Context, orgID uint) error

	// UpdateMaturity writes only the derived maturity columns.
	UpdateMaturity(ctx context.Context, id uint, update entity.MaturityUpdate) error

	Counts(ctx context.Context, orgID *uint) (*entity.UserCounts, error)
	// CountByMaturity returns level -> user count; absent levels are omitted.
	CountByMaturity(ctx context.Context, orgID *uint) (map[int]int64, error)
	TeamStats(ctx context.Context, orgID *uint) ([]entity.TeamStat, error)
}
