package jobs

import (
	"context"
	"time"

	"doctrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type failStaleExtractionsHandler interface {
	Handle(ctx context.Context, cmd commands.FailStaleExtractionsCommand) (int, error)
}

// StaleExtractionJob marks documents the extraction engine never answered
// for as failed so they can be uploaded again.
type StaleExtractionJob struct {
	handler  failStaleExtractionsHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewStaleExtractionJob(
	handler failStaleExtractionsHandler,
	schedule string,
	timeout time.Duration,
	logger *zap.Logger,
) *StaleExtractionJob {
	return &StaleExtractionJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(),
		logger:   logger.Named("stale_extraction_job"),
	}
}

// Start registers the sweep on its schedule.
func (j *StaleExtractionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stale extraction job started",
		zap.String("schedule", j.schedule), zap.Duration("timeout", j.timeout))
	return nil
}

// Stop waits for a running sweep to finish.
func (j *StaleExtractionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stale extraction job stopped")
}

func (j *StaleExtractionJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewFailStaleExtractionsCommand(j.timeout)
	if err != nil {
		j.logger.Error("Stale extraction job misconfigured", zap.Error(err))
		return
	}

	failed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Stale extraction job failed", zap.Error(err))
		return
	}
	if failed > 0 {
		j.logger.Info("Stale extractions marked failed", zap.Int("count", failed))
	}
}
