// Package jobs provides scheduled background tasks for the stowage system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the stowage service.
//
// # Available Jobs
//
// 1. HazardSweepJob - Runs every minute to re-raise hazard warnings for
// hazardous containers whose cargo remains above half their maximum payload
// 2. AutoStowJob - Runs every ten seconds to place dockside containers on the
// ship with the most free weight capacity
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(hazardousContainersHandler, autoStowHandler, hazardNotifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 * * * * *", running at the top of
// every minute. Warnings raised on load are instantaneous; the sweep exists
// so cargo that stays in the warning zone keeps being visible. Auto stow
// uses "*/10 * * * * *" to keep the dock draining without hammering the
// database.
//
// # Error Handling
//
// - An empty sweep result is the normal case and is not logged
// - Auto stow ignores expected business errors (empty dock, no ship fits)
// - Query failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
