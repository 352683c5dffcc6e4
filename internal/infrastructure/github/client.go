// Package github reads organization members, Copilot seats and usage from the GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/provider"
)

const (
	defaultPerPage = 100
	dateLayout     = "2006-01-02"
)

// ClientFactory builds a Copilot data source per token.
type ClientFactory struct {
	baseURL   *url.URL
	timeout   time.Duration
	perPage   int
	transport http.RoundTripper
	logger    *zap.Logger
}

// Option customises a ClientFactory.
type Option func(f *ClientFactory)

// WithTransport sets the base transport under the oauth2 layer.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *ClientFactory) {
		f.transport = rt
	}
}

// NewClientFactory validates the API base URL; it always ends in "/".
func NewClientFactory(cfg config.GitHubConfig, logger *zap.Logger, opts ...Option) (*ClientFactory, error) {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.github.com/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid github.base_url %q: %w", cfg.BaseURL, err)
	}

	perPage := cfg.PerPage
	if perPage <= 0 || perPage > defaultPerPage {
		perPage = defaultPerPage
	}

	f := &ClientFactory{
		baseURL:   u,
		timeout:   cfg.Timeout,
		perPage:   perPage,
		transport: http.DefaultTransport,
		logger:    logger.Named("github"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// New returns a client authenticated with token. An empty token makes anonymous calls.
func (f *ClientFactory) New(token string) provider.CopilotDataSource {
	httpClient := &http.Client{Transport: f.transport, Timeout: f.timeout}
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = f.timeout
	}

	gh := github.NewClient(httpClient)
	base := *f.baseURL
	gh.BaseURL = &base

	return &Client{client: gh, perPage: f.perPage, logger: f.logger}
}

// Client implements provider.CopilotDataSource over go-github.
type Client struct {
	client  *github.Client
	perPage int
	logger  *zap.Logger
}

func (c *Client) ListMembers(ctx context.Context, org string) ([]provider.Member, error) {
	opts := &github.ListMembersOptions{ListOptions: github.ListOptions{PerPage: c.perPage}}
	var members []provider.Member
	for {
		users, resp, err := c.client.Organizations.ListMembers(ctx, org, opts)
		if err != nil {
			return nil, wrap("list members", err)
		}
		for _, u := range users {
			members = append(members, provider.Member{Login: u.GetLogin()})
		}
		if resp.NextPage == 0 || len(users) == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.logger.Debug("Listed organization members", zap.String("org", org), zap.Int("count", len(members)))
	return members, nil
}

type billingResponse struct {
	SeatBreakdown struct {
		Total           int `json:"total"`
		ActiveThisCycle int `json:"active_this_cycle"`
	} `json:"seat_breakdown"`
}

func (c *Client) GetBilling(ctx context.Context, org string) (*provider.Billing, error) {
	var body billingResponse
	if err := c.get(ctx, fmt.Sprintf("orgs/%s/copilot/billing", url.PathEscape(org)), &body); err != nil {
		return nil, wrap("get copilot billing", err)
	}
	return &provider.Billing{
		TotalSeats:      body.SeatBreakdown.Total,
		ActiveThisCycle: body.SeatBreakdown.ActiveThisCycle,
	}, nil
}

type seatsResponse struct {
	TotalSeats int `json:"total_seats"`
	Seats      []struct {
		Assignee struct {
			Login string `json:"login"`
		} `json:"assignee"`
		CreatedAt          *time.Time `json:"created_at"`
		LastActivityAt     *time.Time `json:"last_activity_at"`
		LastActivityEditor string     `json:"last_activity_editor"`
	} `json:"seats"`
}

// ListSeats pages until a short or empty page.
func (c *Client) ListSeats(ctx context.Context, org string) ([]provider.Seat, error) {
	var seats []provider.Seat
	for page := 1; ; page++ {
		var body seatsResponse
		path := fmt.Sprintf("orgs/%s/copilot/billing/seats?page=%d&per_page=%d", url.PathEscape(org), page, c.perPage)
		if err := c.get(ctx, path, &body); err != nil {
			return nil, wrap("list copilot seats", err)
		}
		for _, s := range body.Seats {
			seats = append(seats, provider.Seat{
				Login:          s.Assignee.Login,
				CreatedAt:      s.CreatedAt,
				LastActivityAt: s.LastActivityAt,
				LastEditor:     s.LastActivityEditor,
			})
		}
		if len(body.Seats) < c.perPage {
			break
		}
	}

	c.logger.Debug("Listed copilot seats", zap.String("org", org), zap.Int("count", len(seats)))
	return seats, nil
}

type usageDay struct {
	Day                   string `json:"day"`
	TotalSuggestionsCount int    `json:"total_suggestions_count"`
	TotalAcceptancesCount int    `json:"total_acceptances_count"`
	TotalLinesSuggested   int    `json:"total_lines_suggested"`
	TotalLinesAccepted    int    `json:"total_lines_accepted"`
	TotalActiveUsers      int    `json:"total_active_users"`
	TotalChatAcceptances  int    `json:"total_chat_acceptances"`
	TotalChatTurns        int    `json:"total_chat_turns"`
	TotalActiveChatUsers  int    `json:"total_active_chat_users"`
	Breakdown             []struct {
		Language         string `json:"language"`
		Editor           string `json:"editor"`
		SuggestionsCount int    `json:"suggestions_count"`
		AcceptancesCount int    `json:"acceptances_count"`
		LinesSuggested   int    `json:"lines_suggested"`
		LinesAccepted    int    `json:"lines_accepted"`
		ActiveUsers      int    `json:"active_users"`
	} `json:"breakdown"`
}

func (c *Client) GetUsage(ctx context.Context, org string, since, until time.Time) ([]provider.UsageDay, error) {
	query := url.Values{}
	query.Set("since", since.Format(dateLayout))
	query.Set("until", until.Format(dateLayout))
	path := fmt.Sprintf("orgs/%s/copilot/usage?%s", url.PathEscape(org), query.Encode())

	var body []usageDay
	if err := c.get(ctx, path, &body); err != nil {
		return nil, wrap("get copilot usage", err)
	}

	days := make([]provider.UsageDay, 0, len(body))
	for _, d := range body {
		day, err := time.Parse(dateLayout, d.Day)
		if err != nil {
			c.logger.Warn("Skipping usage day with malformed date", zap.String("day", d.Day))
			continue
		}
		out := provider.UsageDay{
			Day:                   day,
			TotalSuggestionsCount: d.TotalSuggestionsCount,
			TotalAcceptancesCount: d.TotalAcceptancesCount,
			TotalLinesSuggested:   d.TotalLinesSuggested,
			TotalLinesAccepted:    d.TotalLinesAccepted,
			TotalActiveUsers:      d.TotalActiveUsers,
			TotalChatTurns:        d.TotalChatTurns,
			TotalChatAcceptances:  d.TotalChatAcceptances,
			TotalActiveChatUsers:  d.TotalActiveChatUsers,
		}
		for _, b := range d.Breakdown {
			out.Breakdown = append(out.Breakdown, provider.UsageBreakdown{
				Language:         b.Language,
				Editor:           b.Editor,
				SuggestionsCount: b.SuggestionsCount,
				AcceptancesCount: b.AcceptancesCount,
				LinesSuggested:   b.LinesSuggested,
				LinesAccepted:    b.LinesAccepted,
				ActiveUsers:      b.ActiveUsers,
			})
		}
		days = append(days, out)
	}
	return days, nil
}

func (c *Client) GetProfile(ctx context.Context, username string) (*provider.Profile, error) {
	user, _, err := c.client.Users.Get(ctx, username)
	if err != nil {
		return nil, wrap("get user "+username, err)
	}
	return &provider.Profile{
		Login: user.GetLogin(),
		Name:  user.GetName(),
		Email: user.GetEmail(),
	}, nil
}

// get issues a GET for endpoints go-github does not model and decodes the JSON body into v.
func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	req, err := c.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	_, err = c.client.Do(ctx, req, v)
	return err
}

// wrap keeps the upstream status visible in the message.
func wrap(op string, err error) error {
	var resp *github.ErrorResponse
	if errors.As(err, &resp) && resp.Response != nil {
		return fmt.Errorf("github %s: status %d: %w", op, resp.Response.StatusCode, err)
	}
	return fmt.Errorf("github %s: %w", op, err)
}

