package scheduler

import (
	"context"
	"fmt"
	"time"

	"exam_results_bot/internal/app" // For SourceStatus
	"exam_results_bot/internal/domain/session"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	probeTimeout = 2 * time.Minute
	sweepTimeout = 30 * time.Second
)

// SourceProber reads every subject source once.
type SourceProber interface {
	ProbeSources(ctx context.Context) []app.SourceStatus
}

// MaintenanceScheduler runs periodic source probes and session sweeps.
type MaintenanceScheduler struct {
	cronEngine           *cron.Cron
	prober               SourceProber
	sessions             session.Store
	logger               *logrus.Entry
	cronSpecSourceProbe  string
	cronSpecSessionSweep string
}

func NewMaintenanceScheduler(
	prober SourceProber,
	sessions session.Store,
	logger *logrus.Entry,
	cronSpecSourceProbe string, // e.g., "*/10 * * * *" (every 10 minutes)
	cronSpecSessionSweep string, // e.g., "*/15 * * * *" (every 15 minutes)
) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		cronEngine:           cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		prober:               prober,
		sessions:             sessions,
		logger:               logger.WithField("component", "scheduler"),
		cronSpecSourceProbe:  cronSpecSourceProbe,
		cronSpecSessionSweep: cronSpecSessionSweep,
	}
}

// Start registers the jobs and starts the cron engine.
func (s *MaintenanceScheduler) Start() error {
	s.logger.Info("Starting maintenance scheduler...")

	if _, err := s.cronEngine.AddFunc(s.cronSpecSourceProbe, s.runSourceProbe); err != nil {
		return fmt.Errorf("could not add source probe cron job: %w", err)
	}
	if _, err := s.cronEngine.AddFunc(s.cronSpecSessionSweep, s.runSessionSweep); err != nil {
		return fmt.Errorf("could not add session sweep cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Maintenance scheduler started with jobs.")
	return nil
}

func (s *MaintenanceScheduler) runSourceProbe() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	statuses := s.prober.ProbeSources(ctx)
	down := 0
	for _, st := range statuses {
		if !st.Up {
			down++
		}
	}
	logCtx := s.logger.WithFields(logrus.Fields{"job": "source_probe", "sources": len(statuses), "down": down})
	if down > 0 {
		logCtx.Warn("Source probe finished with unavailable sources")
		return
	}
	logCtx.Info("Source probe finished")
}

func (s *MaintenanceScheduler) runSessionSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	removed, err := s.sessions.Sweep(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("job", "session_sweep").Error("Session sweep failed")
		return
	}
	s.logger.WithField("job", "session_sweep").WithField("removed", removed).Debug("Session sweep finished")
}

func (s *MaintenanceScheduler) Stop() {
	s.logger.Info("Stopping maintenance scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Maintenance scheduler gracefully stopped.")
}
