package jobs

import (
	"context"

	"doctrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type sendStageRemindersHandler interface {
	Handle(ctx context.Context, cmd commands.SendStageRemindersCommand) (int, error)
}

// StageReminderJob mails the blocked invoice digest.
type StageReminderJob struct {
	handler    sendStageRemindersHandler
	schedule   string
	recipients []string
	cron       *cron.Cron
	logger     *zap.Logger
}

func NewStageReminderJob(
	handler sendStageRemindersHandler,
	schedule string,
	recipients []string,
	logger *zap.Logger,
) *StageReminderJob {
	return &StageReminderJob{
		handler:    handler,
		schedule:   schedule,
		recipients: recipients,
		cron:       cron.New(),
		logger:     logger.Named("stage_reminder_job"),
	}
}

func (j *StageReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stage reminder job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *StageReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stage reminder job stopped")
}

func (j *StageReminderJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewSendStageRemindersCommand(j.recipients)
	if err != nil {
		j.logger.Error("Stage reminder job misconfigured", zap.Error(err))
		return
	}

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Stage reminder job failed", zap.Error(err))
		return
	}
	if sent > 0 {
		j.logger.Info("Stage reminder sent", zap.Int("blocked_invoices", sent))
	}
}
