package state_test

import (
	"fmt"
	"testing"

	"workorders/internal/core/domain/model/state"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected state.State
	}{
		{"reviewed", state.Reviewing},
		{"visited", state.VisitsCompleted},
		{"repaired", state.Absent},
		{"initial", state.Initial},
		{"reviewing", state.Reviewing},
		{"visits_completed", state.VisitsCompleted},
		{"absent", state.Absent},
		{"archived", state.State("archived")},
		{"", state.State("")},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should normalize %q", tc.input), func(t *testing.T) {
			assert.Equal(t, tc.expected, state.Normalize(tc.input))
		})
	}
}

func TestNormalize_EveryAliasIsCanonical(t *testing.T) {
	for _, a := range state.Aliases() {
		normalized := state.Normalize(a.Legacy)
		assert.Equal(t, a.Canonical, normalized)
		assert.True(t, normalized.IsValid(), "alias %s must map to a canonical state", a.Legacy)
		assert.False(t, state.State(a.Legacy).IsValid(), "alias %s must not be canonical itself", a.Legacy)
	}
}

func TestParse(t *testing.T) {
	t.Run("should accept legacy labels transparently", func(t *testing.T) {
		s, err := state.Parse("visited")
		require.NoError(t, err)
		assert.Equal(t, state.VisitsCompleted, s)
	})

	t.Run("should reject unknown labels naming the allowed set", func(t *testing.T) {
		_, err := state.Parse("closed")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"closed"`)
		assert.Contains(t, err.Error(), "initial, reviewing, visits_completed, absent")
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := state.Parse("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRank(t *testing.T) {
	assert.Equal(t, 1, state.Initial.Rank())
	assert.Equal(t, 2, state.Reviewing.Rank())
	assert.Equal(t, 3, state.VisitsCompleted.Rank())
	assert.Equal(t, 4, state.Absent.Rank())
	assert.Equal(t, 5, state.State("unknown").Rank())
}

func TestAll_IsACopy(t *testing.T) {
	all := state.All()
	all[0] = "mutated"

	assert.Equal(t, state.Initial, state.All()[0])
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"initial"}, state.Initial.Labels())
	assert.Equal(t, []string{"reviewing", "reviewed"}, state.Reviewing.Labels())
	assert.Equal(t, []string{"visits_completed", "visited"}, state.VisitsCompleted.Labels())
	assert.Equal(t, []string{"absent", "repaired"}, state.Absent.Labels())
}

func TestIsLegacy(t *testing.T) {
	assert.True(t, state.IsLegacy("repaired"))
	assert.False(t, state.IsLegacy("absent"))
	assert.False(t, state.IsLegacy("bogus"))
}

func TestFieldGates(t *testing.T) {
	testCases := []struct {
		state           state.State
		technicianNotes bool
		visitReport     bool
		customerSummary bool
	}{
		{state.Initial, false, false, false},
		{state.Reviewing, true, true, false},
		{state.VisitsCompleted, true, true, true},
		{state.Absent, true, true, true},
		{state.State("bogus"), false, false, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should gate fields for %s", tc.state), func(t *testing.T) {
			assert.Equal(t, tc.technicianNotes, tc.state.AllowsTechnicianNotes())
			assert.Equal(t, tc.visitReport, tc.state.AllowsVisitReport())
			assert.Equal(t, tc.customerSummary, tc.state.AllowsCustomerSummary())
		})
	}
}
