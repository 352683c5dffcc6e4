// Command seed loads sample organization, user, metrics and KPI data into an empty database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/database"
	pkglogger "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/logger"
)

var (
	seedFile string
	days     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample data into the dashboard database",
	Long: `seed creates the sample organization, its users, daily metrics and KPIs
described by a YAML fixture. Nothing is written when any organization exists.

Examples:
  seed
  seed --file configs/seed.yaml --days 60`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&seedFile, "file", "", "Seed fixture (defaults to database.seed_file, then "+database.DefaultSeedFile+")")
	rootCmd.Flags().IntVar(&days, "days", 0, "Override metrics.days from the fixture")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := pkglogger.NewZapLogger(cfg.Log.Logger())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	path := seedFile
	if path == "" {
		path = cfg.Database.SeedFile
	}
	file, err := database.LoadSeedFile(path)
	if err != nil {
		return err
	}
	if days > 0 {
		file.Metrics.Days = days
	}

	db, err := database.NewConnection(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db, logger); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, logger); err != nil {
		return err
	}

	result, err := database.NewSeeder(database.NewRepositories(db, logger), logger).Seed(context.Background(), file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Skipped {
		fmt.Fprintln(out, "Database already contains data; nothing seeded.")
		return nil
	}
	fmt.Fprintf(out, "Seeded organization %d: %d users, %d days of metrics, %d KPIs\n",
		result.OrganizationID, result.Users, result.Metrics, result.KPIs)
	return nil
}
