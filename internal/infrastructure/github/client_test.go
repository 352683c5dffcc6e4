package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/provider"
	ghclient "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/github"
)

func newSource(t *testing.T, mux *http.ServeMux, perPage int) provider.CopilotDataSource {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	// no trailing slash on purpose
	factory, err := ghclient.NewClientFactory(config.GitHubConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		PerPage: perPage,
	}, zap.NewNop())
	require.NoError(t, err)
	return factory.New("test-token")
}

func TestClient_ListMembers(t *testing.T) {
	mux := http.NewServeMux()
	var auth string
	mux.HandleFunc("/orgs/acme/members", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "2", r.URL.Query().Get("per_page"))
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"login":"carol"}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<http://%s/orgs/acme/members?page=2&per_page=2>; rel="next"`, r.Host))
		fmt.Fprint(w, `[{"login":"alice"},{"login":"bob"}]`)
	})

	members, err := newSource(t, mux, 2).ListMembers(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, []provider.Member{{Login: "alice"}, {Login: "bob"}, {Login: "carol"}}, members)
	assert.Equal(t, "Bearer test-token", auth)
}

func TestClient_ListMembersError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme/members", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	_, err := newSource(t, mux, 100).ListMembers(context.Background(), "acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestClient_GetBilling(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme/copilot/billing", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"seat_breakdown":{"total":25,"active_this_cycle":18,"inactive_this_cycle":7},"seat_management_setting":"assign_selected"}`)
	})

	billing, err := newSource(t, mux, 100).GetBilling(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, &provider.Billing{TotalSeats: 25, ActiveThisCycle: 18}, billing)
}

func TestClient_ListSeats(t *testing.T) {
	mux := http.NewServeMux()
	var pages []string
	mux.HandleFunc("/orgs/acme/copilot/billing/seats", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)
		if page == "1" {
			fmt.Fprint(w, `{"total_seats":3,"seats":[
				{"assignee":{"login":"alice"},"created_at":"2024-01-10T09:00:00Z","last_activity_at":"2024-03-01T12:00:00Z","last_activity_editor":"vscode/1.85"},
				{"assignee":{"login":"bob"},"created_at":"2024-01-11T09:00:00Z","last_activity_at":null}]}`)
			return
		}
		fmt.Fprint(w, `{"total_seats":3,"seats":[{"assignee":{"login":"carol"},"created_at":"2024-02-01T09:00:00Z"}]}`)
	})

	seats, err := newSource(t, mux, 2).ListSeats(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, seats, 3)
	assert.Equal(t, []string{"1", "2"}, pages)

	assert.Equal(t, "alice", seats[0].Login)
	require.NotNil(t, seats[0].LastActivityAt)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), seats[0].LastActivityAt.UTC())
	assert.Equal(t, "vscode/1.85", seats[0].LastEditor)
	assert.Nil(t, seats[1].LastActivityAt)
	assert.Equal(t, "carol", seats[2].Login)
}

func TestClient_GetUsage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme/copilot/usage", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("since"))
		assert.Equal(t, "2024-03-02", r.URL.Query().Get("until"))
		fmt.Fprint(w, `[
			{"day":"2024-03-01","total_suggestions_count":100,"total_acceptances_count":30,
			 "total_lines_suggested":400,"total_lines_accepted":120,"total_active_users":5,
			 "total_chat_turns":12,"total_chat_acceptances":4,"total_active_chat_users":2,
			 "breakdown":[{"language":"go","editor":"vscode","suggestions_count":60,"acceptances_count":20,"lines_suggested":240,"lines_accepted":80,"active_users":3}]},
			{"day":"not-a-date","total_suggestions_count":1}
		]`)
	})

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	days, err := newSource(t, mux, 100).GetUsage(context.Background(), "acme", since, since.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, days, 1)

	day := days[0]
	assert.Equal(t, since, day.Day)
	assert.Equal(t, 100, day.TotalSuggestionsCount)
	assert.Equal(t, 30, day.TotalAcceptancesCount)
	assert.Equal(t, 12, day.TotalChatTurns)
	require.Len(t, day.Breakdown, 1)
	assert.Equal(t, provider.UsageBreakdown{
		Language: "go", Editor: "vscode", SuggestionsCount: 60, AcceptancesCount: 20,
		LinesSuggested: 240, LinesAccepted: 80, ActiveUsers: 3,
	}, day.Breakdown[0])
}

func TestClient_GetProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login":"alice","name":"Alice Liddell","email":null}`)
	})

	profile, err := newSource(t, mux, 100).GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, &provider.Profile{Login: "alice", Name: "Alice Liddell"}, profile)
}

func TestNewClientFactory_InvalidBaseURL(t *testing.T) {
	_, err := ghclient.NewClientFactory(config.GitHubConfig{BaseURL: "://bad"}, zap.NewNop())
	assert.Error(t, err)
}
