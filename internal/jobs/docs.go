// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleExtractionJob - marks documents still awaiting extraction after
// the configured timeout as failed (default every 5 minutes)
// 2. StageReminderJob - mails the digest of blocked invoices to the
// notification recipients (default weekdays at 07:00)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(failStaleHandler, remindersHandler, cfg, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the next run is attempted on schedule. Runs
// with nothing to do are silent.
package jobs
