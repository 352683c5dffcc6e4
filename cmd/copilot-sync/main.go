// Command copilot-sync pulls GitHub organization members, Copilot seats and usage into the dashboard database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/database"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/github"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
	pkglogger "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/logger"
)

var (
	token        string
	org          string
	days         int
	skipUsers    bool
	skipMetrics  bool
	withProfiles bool
	outputJSON   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "copilot-sync",
	Short: "Sync GitHub Copilot data into the dashboard database",
	Long: `copilot-sync reads organization members, Copilot seats and daily usage from the
GitHub API and stores them, then recomputes every user's maturity level.

Examples:
  # Sync the last 30 days
  copilot-sync --org my-org --token $GITHUB_TOKEN

  # Users only, with profile names and emails
  copilot-sync --org my-org --skip-metrics --with-profiles`,
	SilenceUsage: true,
	RunE:         runSync,
}

var testConnectionCmd = &cobra.Command{
	Use:          "test-connection",
	Short:        "Check that the token can list the organization's members",
	SilenceUsage: true,
	RunE:         runTestConnection,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("GITHUB_TOKEN"), "GitHub token with read:org and copilot scopes (defaults to $GITHUB_TOKEN, then github.token)")
	rootCmd.PersistentFlags().StringVar(&org, "org", "", "GitHub organization login (defaults to github.org)")

	rootCmd.Flags().IntVar(&days, "days", dto.DefaultSyncDays, "Days of usage history to request (max 100)")
	rootCmd.Flags().BoolVar(&skipUsers, "skip-users", false, "Do not sync members and seats")
	rootCmd.Flags().BoolVar(&skipMetrics, "skip-metrics", false, "Do not sync daily usage")
	rootCmd.Flags().BoolVar(&withProfiles, "with-profiles", false, "Fetch each member's profile for name and email")
	rootCmd.Flags().BoolVar(&outputJSON, "json", false, "Print the sync result as JSON")

	rootCmd.AddCommand(testConnectionCmd)
}

// app holds what both commands need; close releases the database.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	services *usecase.Services
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if token == "" {
		token = cfg.GitHub.Token
	}
	if org == "" {
		org = cfg.GitHub.Org
	}
	if token == "" || org == "" {
		return nil, fmt.Errorf("--token and --org are required (or github.token and github.org in config)")
	}

	logger, err := pkglogger.NewZapLogger(cfg.Log.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, logger); err != nil {
		_ = database.Close(db, logger)
		return nil, err
	}

	factory, err := github.NewClientFactory(cfg.GitHub, logger)
	if err != nil {
		_ = database.Close(db, logger)
		return nil, err
	}

	repos := database.NewRepositories(db, logger)
	services := usecase.NewServices(repos, factory, nil, usecase.SyncConfig{EmailDomain: cfg.GitHub.EmailDomain}, logger)

	return &app{cfg: cfg, logger: logger, db: db, services: services}, nil
}

func (a *app) close() {
	if err := database.Close(a.db, a.logger); err != nil {
		a.logger.Error("Failed to close database connection", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func runSync(cmd *cobra.Command, args []string) error {
	if days < 1 || days > 100 {
		return fmt.Errorf("--days must be within 1..100")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	syncUsers := !skipUsers
	syncMetrics := !skipMetrics
	req := &dto.SyncRequest{
		Token:        token,
		Org:          org,
		SyncUsers:    &syncUsers,
		SyncMetrics:  &syncMetrics,
		Days:         days,
		WithProfiles: withProfiles,
	}

	resp, err := a.services.Sync.Sync(context.Background(), req)
	if err != nil {
		return err
	}

	if outputJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printResult(cmd.OutOrStdout(), resp)
	return nil
}

func printResult(out io.Writer, resp *dto.SyncResponse) {
	fmt.Fprintf(out, "%s (sync %s)\n", resp.Message, resp.SyncID)
	fmt.Fprintf(out, "Organization:   %s\n", resp.OrgName)
	fmt.Fprintf(out, "Users synced:   %d\n", resp.UsersSynced)
	fmt.Fprintf(out, "Metrics synced: %d\n", resp.MetricsSynced)

	for _, w := range resp.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", w)
	}

	if len(resp.MaturityDistribution) == 0 {
		return
	}
	levels := make([]string, 0, len(resp.MaturityDistribution))
	for level := range resp.MaturityDistribution {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	fmt.Fprintln(out, "\nMaturity distribution:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tUSERS")
	for _, level := range levels {
		fmt.Fprintf(w, "%s\t%d\n", level, resp.MaturityDistribution[level])
	}
	w.Flush()
}

func runTestConnection(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	resp, err := a.services.Sync.TestConnection(context.Background(), token, org)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d members)\n", resp.Message, resp.MembersCount)
	return nil
}
