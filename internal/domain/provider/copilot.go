package provider

import (
	"context"
	"time"
)

// CopilotDataSource is the read-only view of the upstream GitHub API used by sync.
// Calls are sequential; a failed page ends pagination with an error.
type CopilotDataSource interface {
	// ListMembers returns every member login of the organization, 100 per page.
	ListMembers(ctx context.Context, org string) ([]Member, error)

	// GetBilling returns the organization's Copilot seat summary.
	GetBilling(ctx context.Context, org string) (*Billing, error)

	// ListSeats returns every Copilot seat assignment.
	ListSeats(ctx context.Context, org string) ([]Seat, error)

	// GetUsage returns per-day usage for [since, until]. Enterprise only.
	GetUsage(ctx context.Context, org string, since, until time.Time) ([]UsageDay, error)

	// GetProfile returns a user's public name and email.
	GetProfile(ctx context.Context, username string) (*Profile, error)
}

// Factory builds a data source for a per-request token.
type Factory interface {
	New(token string) CopilotDataSource
}

// Member is an organization member.
type Member struct {
	Login string
}

// Billing summarises the organization's seats.
type Billing struct {
	TotalSeats      int
	ActiveThisCycle int
}

// Seat is one Copilot license assignment.
type Seat struct {
	Login          string
	CreatedAt      *time.Time
	LastActivityAt *time.Time
	LastEditor     string
}

// UsageBreakdown is usage for one language and editor pair on one day.
type UsageBreakdown struct {
	Language         string
	Editor           string
	SuggestionsCount int
	AcceptancesCount int
	LinesSuggested   int
	LinesAccepted    int
	ActiveUsers      int
}

// UsageDay is the organization's aggregated usage for one calendar day.
type UsageDay struct {
	Day                   time.Time
	TotalSuggestionsCount int
	TotalAcceptancesCount int
	TotalLinesSuggested   int
	TotalLinesAccepted    int
	TotalActiveUsers      int
	TotalChatTurns        int
	TotalChatAcceptances  int
	TotalActiveChatUsers  int
	Breakdown             []UsageBreakdown
}

// Profile is the public profile of a user.
type Profile struct {
	Login string
	Name  string
	Email string
}
