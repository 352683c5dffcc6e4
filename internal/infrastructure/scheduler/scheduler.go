// Package scheduler runs the periodic maturity recompute and KPI refresh.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
)

// jobTimeout bounds one run of the maturity job.
const jobTimeout = 10 * time.Minute

type MaturityRecomputer interface {
	Recompute(ctx context.Context, orgID *uint) (*dto.RecomputeResponse, error)
}

type KPIRefresher interface {
	Refresh(ctx context.Context, orgID *uint) ([]*dto.KPIResponse, error)
}

// DistributionObserver receives the per-level user counts after each recompute.
type DistributionObserver interface {
	SetMaturityDistribution(distribution map[string]int64)
}

type Scheduler struct {
	cron     *cron.Cron
	schedule string
	logger   *zap.Logger
}

// New parses the schedule in the configured timezone. observer may be nil.
func New(cfg config.SchedulerConfig, maturity MaturityRecomputer, kpis KPIRefresher, observer DistributionObserver, logger *zap.Logger) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler.timezone %q: %w", cfg.Timezone, err)
	}

	logger = logger.Named("scheduler")
	cronLog := cronLogger{logger: logger.Sugar()}
	c := cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	job := NewMaturityJob(maturity, kpis, observer, logger)
	if _, err := c.AddJob(cfg.MaturitySchedule, job); err != nil {
		return nil, fmt.Errorf("invalid scheduler.maturity_schedule %q: %w", cfg.MaturitySchedule, err)
	}

	return &Scheduler{cron: c, schedule: cfg.MaturitySchedule, logger: logger}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("maturity_schedule", s.schedule))
}

// Stop prevents new runs and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MaturityJob recomputes every user's maturity, then refreshes the KPIs.
type MaturityJob struct {
	maturity MaturityRecomputer
	kpis     KPIRefresher
	observer DistributionObserver
	logger   *zap.Logger
}

func NewMaturityJob(maturity MaturityRecomputer, kpis KPIRefresher, observer DistributionObserver, logger *zap.Logger) *MaturityJob {
	return &MaturityJob{maturity: maturity, kpis: kpis, observer: observer, logger: logger}
}

func (j *MaturityJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := j.RunOnce(ctx); err != nil {
		j.logger.Error("Scheduled maturity job failed", zap.Error(err))
	}
}

// RunOnce executes the job synchronously. A KPI refresh failure does not undo the recompute.
func (j *MaturityJob) RunOnce(ctx context.Context) error {
	started := time.Now()

	result, err := j.maturity.Recompute(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to recompute maturity: %w", err)
	}
	if j.observer != nil {
		j.observer.SetMaturityDistribution(result.Distribution)
	}

	kpis, err := j.kpis.Refresh(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to refresh kpis: %w", err)
	}

	j.logger.Info("Scheduled maturity job finished",
		zap.Int("users_updated", result.UsersUpdated),
		zap.Int("kpis", len(kpis)),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
