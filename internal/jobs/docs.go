// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderCleanupJob - removes cancelled shipments from every order
// 2. ChartsExportJob - rewrites the orders-by-state and orders-by-customer charts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cleanOrdersHandler, exportChartsHandler, jobs.DefaultSchedules(), logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and never stop the schedule. A job that fails to
// start stops the jobs already started.
package jobs
