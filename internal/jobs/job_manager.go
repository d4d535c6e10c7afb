package jobs

import (
	"fmt"
	"log/slog"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/application/usecases/queries"
	"stowage/internal/core/domain/model/container"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	hazardSweepJob *HazardSweepJob
	autoStowJob    *AutoStowJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers and notifier as dependencies to wire up job execution.
func NewJobManager(
	hazardousContainersHandler queries.GetHazardousContainersQueryHandler,
	autoStowHandler commands.AutoStowCommandHandler,
	notifier container.HazardNotifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		hazardSweepJob: NewHazardSweepJob(hazardousContainersHandler, notifier, logger),
		autoStowJob:    NewAutoStowJob(autoStowHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.hazardSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start hazard sweep job: %w", err)
	}

	if err := jm.autoStowJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto stow job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.hazardSweepJob.Stop()
	jm.autoStowJob.Stop()
}
