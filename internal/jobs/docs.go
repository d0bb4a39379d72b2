// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. DockLoadingJob - Runs every ten seconds to admit the next waiting queue
// entry at each active warehouse whose dock is idle
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, startLoadingHandler, logger)
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
// The dock loading job uses the cron expression "*/10 * * * * *", running
// every ten seconds. Admission goes through StartLoadingCommandHandler, so
// the job and the API apply exactly the same state transitions.
//
// # Error Handling
//
// - An empty queue at a warehouse is not an error; the warehouse is skipped
// - A lost admission race (entry no longer waiting) is retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
