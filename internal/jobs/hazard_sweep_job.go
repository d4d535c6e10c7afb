package jobs

import (
	"context"
	"log/slog"

	"stowage/internal/core/application/usecases/queries"
	"stowage/internal/core/domain/model/container"

	"github.com/robfig/cron/v3"
)

// HazardSweepJob periodically scans for hazardous containers whose cargo
// remains above half their maximum payload and re-raises a hazard warning
// for each. Runs at the top of every minute.
type HazardSweepJob struct {
	handler  queries.GetHazardousContainersQueryHandler
	notifier container.HazardNotifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHazardSweepJob creates a new job for sweeping hazardous containers.
// Warnings go through the same HazardNotifier port the domain uses on load.
func NewHazardSweepJob(
	handler queries.GetHazardousContainersQueryHandler,
	notifier container.HazardNotifier,
	logger *slog.Logger,
) *HazardSweepJob {
	return &HazardSweepJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "hazard_sweep_job"),
	}
}

// Start begins the hazard sweep job to run every minute.
func (j *HazardSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetHazardousContainersQuery()

		hazardous, queryErr := j.handler.Handle(ctx, query)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Hazard sweep job failed", "error", queryErr)
			return
		}

		for _, hit := range hazardous {
			j.notifier.NotifyHazard(hit.SerialNumber)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hazard sweep job started (running every minute)")
	return nil
}

// Stop stops the hazard sweep job.
func (j *HazardSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Hazard sweep job stopped")
}
