package jobs

import (
	"context"
	"errors"
	"log/slog"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AutoStowJob manages the scheduled stowage of waiting containers.
// Runs every ten seconds to place dockside containers on ships with
// remaining capacity.
type AutoStowJob struct {
	handler commands.AutoStowCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoStowJob creates a new job for automatic stowage.
// Uses AutoStowCommandHandler to place waiting containers every ten seconds.
func NewAutoStowJob(handler commands.AutoStowCommandHandler, logger *slog.Logger) *AutoStowJob {
	return &AutoStowJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "auto_stow_job"),
	}
}

// Start begins the auto stow job to run every ten seconds.
func (j *AutoStowJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAutoStowCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoUnstowedContainersFound) && !errors.Is(err, services.ErrShipNotFound) {
				j.logger.ErrorContext(ctx, "Auto stow job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto stow job started (running every ten seconds)")
	return nil
}

// Stop stops the auto stow job.
func (j *AutoStowJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto stow job stopped")
}
