package jobs

import (
	"context"
	"log/slog"

	"workorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLegacyStateSweepSchedule runs the sweep every night at 03:00.
const DefaultLegacyStateSweepSchedule = "0 0 3 * * *"

// LegacyStateNormalizer is satisfied by commands.NormalizeLegacyStatesCommandHandler.
type LegacyStateNormalizer interface {
	Handle(ctx context.Context, cmd commands.NormalizeLegacyStatesCommand) (commands.NormalizeLegacyStatesResult, error)
}

// LegacyStateSweepJob periodically rewrites legacy state labels left in the
// store by older clients.
type LegacyStateSweepJob struct {
	handler  LegacyStateNormalizer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLegacyStateSweepJob creates the sweep job. An empty schedule falls back
// to DefaultLegacyStateSweepSchedule. Schedules use the six-field format
// with seconds.
func NewLegacyStateSweepJob(handler LegacyStateNormalizer, schedule string, logger *slog.Logger) *LegacyStateSweepJob {
	if schedule == "" {
		schedule = DefaultLegacyStateSweepSchedule
	}
	return &LegacyStateSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "legacy_state_sweep_job"),
	}
}

// Start registers the sweep on its schedule.
func (j *LegacyStateSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Legacy state sweep job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single sweep and logs its outcome.
func (j *LegacyStateSweepJob) RunOnce(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewNormalizeLegacyStatesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Legacy state sweep failed", "error", err)
		return
	}
	if result.Total() == 0 {
		j.logger.DebugContext(ctx, "Legacy state sweep found nothing to relabel")
		return
	}

	for _, r := range result.Relabels {
		if r.Rows > 0 {
			j.logger.InfoContext(ctx, "Relabelled legacy state",
				"legacy", r.Legacy,
				"canonical", string(r.Canonical),
				"rows", r.Rows,
			)
		}
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *LegacyStateSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Legacy state sweep job stopped")
}
