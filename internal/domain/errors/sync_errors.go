package errors

import (
	"fmt"
	"strings"
)

// SyncError describes a failed step of a Copilot data sync.
type SyncError struct {
	Step    string
	Message string
	Org     string
	Cause   error
}

func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (org: %s) - %v", e.Step, e.Message, e.Org, e.Cause)
	}
	return fmt.Sprintf("%s: %s (org: %s)", e.Step, e.Message, e.Org)
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// Fatal reports whether the step aborts the whole sync.
// Organization and member failures are fatal; billing, seats, profiles and
// usage are optional and only produce a warning.
func (e *SyncError) Fatal() bool {
	switch e.Step {
	case StepOrganization, StepMembers, StepPersist:
		return true
	default:
		return false
	}
}

// Sync steps
const (
	StepOrganization = "ORGANIZATION"
	StepBilling      = "BILLING"
	StepMembers      = "MEMBERS"
	StepSeats        = "SEATS"
	StepProfiles     = "PROFILES"
	StepUsage        = "USAGE"
	StepMembership   = "MEMBERSHIP"
	StepPersist      = "PERSIST"
)

func NewBillingUnavailableError(org string, cause error) *SyncError {
	return &SyncError{Step: StepBilling, Message: "copilot billing unavailable, stored seat counts kept", Org: org, Cause: cause}
}

func NewMembersFetchError(org string, cause error) *SyncError {
	return &SyncError{Step: StepMembers, Message: "failed to list organization members", Org: org, Cause: cause}
}

func NewSeatsUnavailableError(org string, cause error) *SyncError {
	return &SyncError{Step: StepSeats, Message: "copilot seats unavailable, treating every member as not enabled", Org: org, Cause: cause}
}

func NewProfileUnavailableError(org, username string, cause error) *SyncError {
	return &SyncError{Step: StepProfiles, Message: "profile lookup failed for " + username, Org: org, Cause: cause}
}

func NewUsageUnavailableError(org string, cause error) *SyncError {
	return &SyncError{Step: StepUsage, Message: "copilot usage unavailable, metrics sync skipped", Org: org, Cause: cause}
}

// NewMembershipConflictError reports members already stored under another organization.
func NewMembershipConflictError(org string, usernames []string) *SyncError {
	return &SyncError{
		Step:    StepMembership,
		Message: fmt.Sprintf("%d members belong to another organization and were left unchanged: %s", len(usernames), strings.Join(usernames, ", ")),
		Org:     org,
	}
}

func NewPersistError(org, what string, cause error) *SyncError {
	return &SyncError{Step: StepPersist, Message: "failed to store " + what, Org: org, Cause: cause}
}
