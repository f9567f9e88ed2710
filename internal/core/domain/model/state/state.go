package state

import (
	"fmt"
	"strings"

	"workorders/internal/pkg/errs"
)

// State is a lifecycle label of a work order.
type State string

const (
	Initial         State = "initial"
	Reviewing       State = "reviewing"
	VisitsCompleted State = "visits_completed"
	Absent          State = "absent"
)

// Alias pairs a legacy label with the canonical state it stands for.
type Alias struct {
	Legacy    string
	Canonical State
}

// All returns the canonical states in display order.
func All() []State {
	return []State{Initial, Reviewing, VisitsCompleted, Absent}
}

// Aliases returns the legacy label table.
func Aliases() []Alias {
	return []Alias{
		{Legacy: "reviewed", Canonical: Reviewing},
		{Legacy: "visited", Canonical: VisitsCompleted},
		{Legacy: "repaired", Canonical: Absent},
	}
}

// Normalize maps a legacy label to its canonical state. Canonical labels map
// to themselves and unrecognized input is returned unchanged, so callers
// must still check IsValid.
func Normalize(label string) State {
	for _, a := range Aliases() {
		if a.Legacy == label {
			return a.Canonical
		}
	}
	return State(label)
}

// IsLegacy reports whether label is one of the deprecated aliases.
func IsLegacy(label string) bool {
	for _, a := range Aliases() {
		if a.Legacy == label {
			return true
		}
	}
	return false
}

// Parse normalizes label and validates the result.
func Parse(label string) (State, error) {
	s := Normalize(label)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// IsValid reports membership in the canonical set only.
func (s State) IsValid() bool {
	return s.Rank() <= len(All())
}

// Validate returns a ValueIsInvalidError naming the rejected value and the
// accepted states.
func (s State) Validate() error {
	if s.IsValid() {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("state",
		fmt.Errorf("%q is not one of %s", string(s), allowedList()))
}

// Rank is the 1-based display position. Unknown labels rank after every
// canonical state.
func (s State) Rank() int {
	for i, c := range All() {
		if c == s {
			return i + 1
		}
	}
	return len(All()) + 1
}

// Labels returns the canonical label followed by every legacy alias that
// normalizes to it. Stored rows carrying any of them belong to the same column.
func (s State) Labels() []string {
	labels := []string{string(s)}
	for _, a := range Aliases() {
		if a.Canonical == s {
			labels = append(labels, a.Legacy)
		}
	}
	return labels
}

// AllowsTechnicianNotes reports whether technician notes may be written in s.
func (s State) AllowsTechnicianNotes() bool {
	return s.IsValid() && s != Initial
}

// AllowsVisitReport reports whether the report, photos and signature may be written in s.
func (s State) AllowsVisitReport() bool {
	return s.IsValid() && s != Initial
}

// AllowsCustomerSummary reports whether a summary may be sent to the customer.
func (s State) AllowsCustomerSummary() bool {
	return s == VisitsCompleted || s == Absent
}

func (s State) String() string {
	return string(s)
}

func allowedList() string {
	names := make([]string, 0, len(All()))
	for _, s := range All() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
