package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Job is a scheduled task the manager can start and stop.
type Job interface {
	Start() error
	Stop()
}

// Config holds the schedules in standard five-field cron syntax.
type Config struct {
	StaleExtractionSchedule string
	ExtractionTimeout       time.Duration
	ReminderSchedule        string
	ReminderRecipients      []string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs   []Job
	logger *zap.Logger
}

// NewJobManager creates the stale extraction sweep and, when recipients are
// configured, the reminder digest.
func NewJobManager(
	failStaleHandler failStaleExtractionsHandler,
	remindersHandler sendStageRemindersHandler,
	cfg Config,
	logger *zap.Logger,
) *JobManager {
	jobs := []Job{
		NewStaleExtractionJob(failStaleHandler, cfg.StaleExtractionSchedule, cfg.ExtractionTimeout, logger),
	}
	if len(cfg.ReminderRecipients) > 0 {
		jobs = append(jobs, NewStageReminderJob(remindersHandler, cfg.ReminderSchedule, cfg.ReminderRecipients, logger))
	} else {
		logger.Warn("No reminder recipients configured, stage reminder job disabled")
	}

	return &JobManager{jobs: jobs, logger: logger}
}

// StartAll starts all scheduled jobs. If one fails to start, the jobs
// already running are stopped.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %T: %w", job, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, job := range jm.jobs {
		job.Stop()
	}
}
