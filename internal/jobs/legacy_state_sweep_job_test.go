package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/state"
	"workorders/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNormalizer struct{ mock.Mock }

func (m *MockNormalizer) Handle(
	ctx context.Context,
	cmd commands.NormalizeLegacyStatesCommand,
) (commands.NormalizeLegacyStatesResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.NormalizeLegacyStatesResult), args.Error(1)
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLegacyStateSweepJob_RunOnce_LogsRelabels(t *testing.T) {
	ctx := t.Context()
	var buf bytes.Buffer
	normalizer := &MockNormalizer{}
	normalizer.On("Handle", ctx, mock.Anything).Return(commands.NormalizeLegacyStatesResult{
		Relabels: []commands.Relabel{
			{Legacy: "reviewed", Canonical: state.Reviewing, Rows: 0},
			{Legacy: "visited", Canonical: state.VisitsCompleted, Rows: 3},
		},
	}, nil).Once()

	jobs.NewLegacyStateSweepJob(normalizer, "", newLogger(&buf)).RunOnce(ctx)

	normalizer.AssertExpectations(t)
	out := buf.String()
	assert.Contains(t, out, "component=legacy_state_sweep_job")
	assert.Contains(t, out, "legacy=visited")
	assert.Contains(t, out, "rows=3")
	assert.NotContains(t, out, "legacy=reviewed")
}

func TestLegacyStateSweepJob_RunOnce_NothingToDo(t *testing.T) {
	ctx := t.Context()
	var buf bytes.Buffer
	normalizer := &MockNormalizer{}
	normalizer.On("Handle", ctx, mock.Anything).Return(commands.NormalizeLegacyStatesResult{}, nil).Once()

	jobs.NewLegacyStateSweepJob(normalizer, "", newLogger(&buf)).RunOnce(ctx)

	assert.Contains(t, buf.String(), "nothing to relabel")
}

func TestLegacyStateSweepJob_RunOnce_LogsFailure(t *testing.T) {
	ctx := t.Context()
	var buf bytes.Buffer
	normalizer := &MockNormalizer{}
	normalizer.On("Handle", ctx, mock.Anything).
		Return(commands.NormalizeLegacyStatesResult{}, errors.New("connection refused")).Once()

	jobs.NewLegacyStateSweepJob(normalizer, "", newLogger(&buf)).RunOnce(ctx)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "connection refused")
}

func TestLegacyStateSweepJob_Start_RejectsBadSchedule(t *testing.T) {
	var buf bytes.Buffer
	job := jobs.NewLegacyStateSweepJob(&MockNormalizer{}, "every night", newLogger(&buf))

	require.Error(t, job.Start())
}

func TestJobManager_StartStop(t *testing.T) {
	var buf bytes.Buffer
	manager := jobs.NewJobManager(&MockNormalizer{}, "0 0 3 * * *", newLogger(&buf))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Legacy state sweep job started")
	assert.Contains(t, buf.String(), "Legacy state sweep job stopped")
}
