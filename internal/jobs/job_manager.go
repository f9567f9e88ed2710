package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the scheduled jobs of the service.
type JobManager struct {
	legacyStateSweepJob *LegacyStateSweepJob
}

// NewJobManager wires the jobs to their command handlers.
func NewJobManager(
	normalizer LegacyStateNormalizer,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		legacyStateSweepJob: NewLegacyStateSweepJob(normalizer, sweepSchedule, logger),
	}
}

// StartAll starts every job. Nothing is left running when an error is
// returned.
func (jm *JobManager) StartAll() error {
	if err := jm.legacyStateSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start legacy state sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.legacyStateSweepJob.Stop()
}
