package errors

import (
	apperrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/errors"
)

// Lookup misses surface as 404.
var (
	ErrOrganizationNotFound = apperrors.NotFound("Organization not found")
	ErrUserNotFound         = apperrors.NotFound("User not found")
	ErrMetricsNotFound      = apperrors.NotFound("Metrics not found")
	ErrNoMetrics            = apperrors.NotFound("No metrics found")
	ErrKPINotFound          = apperrors.NotFound("KPI not found")
	ErrCodeMetricNotFound   = apperrors.NotFound("Code quality record not found")
)

// Duplicate unique keys surface as 400.
var (
	ErrDuplicateOrganization = apperrors.AlreadyExists("Organization already exists")
	ErrDuplicateUser         = apperrors.AlreadyExists("Username already exists")
	ErrDuplicateKPI          = apperrors.AlreadyExists("KPI already exists")
)

// Validation failures.
var (
	ErrInvalidMaturityLevel = apperrors.InvalidArgument("maturity_level must be between 0 and 5")
	ErrInvalidPhase         = apperrors.InvalidArgument("phase must be between 1 and 4")
	ErrInvalidEventType     = apperrors.InvalidArgument("unknown event_type")
	ErrInvalidDays          = apperrors.InvalidArgument("days must be a positive integer")
	ErrInvalidDate          = apperrors.InvalidArgument("date must be formatted as YYYY-MM-DD")
	ErrOrganizationRequired = apperrors.InvalidArgument("organization does not exist")
)
