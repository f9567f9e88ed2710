package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"
)

// ErrReorderBatchIsEmpty is returned when a reorder request carries no moves.
var ErrReorderBatchIsEmpty = errors.New("reorder batch is empty")

// ColumnStore is the part of the work-order store the coordinator needs to
// compute the next free slot of a column.
type ColumnStore interface {
	LockColumn(ctx context.Context, s state.State) error
	MaxOrder(ctx context.Context, s state.State) (int, error)
}

// Move is one requested entry of a bulk reorder. A nil State keeps the
// work order in its current column.
type Move struct {
	ID    int64
	Order int
	State *state.State
}

// ReorderPlan is a validated bulk reorder.
type ReorderPlan struct {
	moves []Move
}

// IDs returns the referenced work order ids in ascending order, which is
// also the row locking order.
func (p ReorderPlan) IDs() []int64 {
	ids := make([]int64, 0, len(p.moves))
	for _, m := range p.moves {
		ids = append(ids, m.ID)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of moves.
func (p ReorderPlan) Len() int {
	return len(p.moves)
}

// Resolve pairs every move with its current work order. Each work order is
// moved in memory and the resulting positions are returned together with
// the affected columns (sources and destinations) sorted by rank.
// A move whose work order is not in current yields errs.ObjectNotFoundError.
func (p ReorderPlan) Resolve(current []*workorder.WorkOrder) ([]workorder.Position, []state.State, error) {
	byID := make(map[int64]*workorder.WorkOrder, len(current))
	for _, wo := range current {
		byID[wo.ID()] = wo
	}

	positions := make([]workorder.Position, 0, len(p.moves))
	columns := make([]state.State, 0, 2)
	for _, m := range p.moves {
		wo, ok := byID[m.ID]
		if !ok {
			return nil, nil, errs.NewObjectNotFoundError("work order", m.ID)
		}

		target := wo.State()
		if m.State != nil {
			target = *m.State
		}
		columns = appendColumn(columns, wo.State())
		columns = appendColumn(columns, target)

		if err := wo.MoveTo(target, m.Order); err != nil {
			return nil, nil, err
		}
		positions = append(positions, workorder.Position{ID: m.ID, Order: m.Order, State: target})
	}

	slices.SortFunc(columns, func(a, b state.State) int { return a.Rank() - b.Rank() })
	return positions, columns, nil
}

func appendColumn(columns []state.State, s state.State) []state.State {
	if slices.Contains(columns, s) {
		return columns
	}
	return append(columns, s)
}

// OrderingCoordinator keeps order values usable as a per-state sort key.
// New and transitioned work orders are appended to the end of their column;
// mid-column placement only happens through a bulk reorder. Gaps are allowed
// and nothing is ever renumbered.
type OrderingCoordinator struct{}

func NewOrderingCoordinator() OrderingCoordinator {
	return OrderingCoordinator{}
}

// NextSlot locks the column and returns max(order)+1, so the first work
// order of an empty column gets 1. The lock is held until the surrounding
// transaction ends, which keeps two concurrent callers from reading the same
// maximum.
func (OrderingCoordinator) NextSlot(ctx context.Context, store ColumnStore, s state.State) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := store.LockColumn(ctx, s); err != nil {
		return 0, err
	}

	highest, err := store.MaxOrder(ctx, s)
	if err != nil {
		return 0, err
	}
	if highest >= workorder.MaxOrder {
		return 0, errs.NewValueIsOutOfRangeError("order", highest+1, 0, workorder.MaxOrder)
	}

	return highest + 1, nil
}

// Place appends a new work order to the end of its current column.
func (c OrderingCoordinator) Place(ctx context.Context, store ColumnStore, wo *workorder.WorkOrder) error {
	next, err := c.NextSlot(ctx, store, wo.State())
	if err != nil {
		return err
	}
	return wo.Reposition(next)
}

// Reslot moves wo to target at the end of the target column. It does nothing
// and returns false when target equals the current state.
func (c OrderingCoordinator) Reslot(
	ctx context.Context,
	store ColumnStore,
	wo *workorder.WorkOrder,
	target state.State,
) (bool, error) {
	if target == wo.State() {
		return false, nil
	}

	next, err := c.NextSlot(ctx, store, target)
	if err != nil {
		return false, err
	}
	if err = wo.MoveTo(target, next); err != nil {
		return false, err
	}

	return true, nil
}

// PlanReorder validates a bulk reorder: it must be non-empty, reference
// each positive id once, use orders within range and canonical states.
func (OrderingCoordinator) PlanReorder(moves []Move) (ReorderPlan, error) {
	if len(moves) == 0 {
		return ReorderPlan{}, errors.Join(ErrReorderBatchIsEmpty, errs.NewValueIsRequiredError("updates"))
	}

	seen := make(map[int64]struct{}, len(moves))
	var errList []error
	for i, m := range moves {
		if m.ID <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("updates[%d].id", i), fmt.Errorf("%d is not a valid id", m.ID)))
			continue
		}
		if _, dup := seen[m.ID]; dup {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("updates[%d].id", i), fmt.Errorf("%d appears more than once", m.ID)))
		}
		seen[m.ID] = struct{}{}

		if m.Order < 0 || m.Order > workorder.MaxOrder {
			errList = append(errList, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("updates[%d].order", i), m.Order, 0, workorder.MaxOrder))
		}
		if m.State != nil {
			if err := m.State.Validate(); err != nil {
				errList = append(errList, err)
			}
		}
	}
	if err := errors.Join(errList...); err != nil {
		return ReorderPlan{}, err
	}

	return ReorderPlan{moves: slices.Clone(moves)}, nil
}
