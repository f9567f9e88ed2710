// Package ports defines the contracts between the work-order core and its
// adapters: persistence, the technician directory and outbound notifications.
package ports

import (
	"context"

	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work orders.
// Every returned aggregate carries a canonical state.
type WorkOrderRepository interface {
	// Add persists a new work order and records its store-assigned id.
	// A taken number yields errs.ConflictError.
	Add(ctx context.Context, wo *workorder.WorkOrder) error

	// Update writes every mutable column of an existing work order and bumps
	// its updated timestamp. Visibility rules are not applied here.
	Update(ctx context.Context, wo *workorder.WorkOrder) error

	// Get returns a work order or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*workorder.WorkOrder, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*workorder.WorkOrder, error)

	// GetManyForUpdate locks and returns the existing work orders among ids,
	// in id order. Missing ids are simply absent from the result.
	GetManyForUpdate(ctx context.Context, ids []int64) ([]*workorder.WorkOrder, error)

	// List returns work orders sorted by state rank, then order ascending,
	// then creation time descending. With no technicians every work order is
	// returned, otherwise only those assigned to one of the given names.
	List(ctx context.Context, technicians ...string) ([]*workorder.WorkOrder, error)

	// NumberExists reports whether a work order already uses number.
	NumberExists(ctx context.Context, number workorder.Number) (bool, error)

	// Delete removes a work order and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// LockColumn serializes order assignment in a state column until the
	// transaction ends.
	LockColumn(ctx context.Context, s state.State) error

	// MaxOrder returns the highest order in a state column, legacy labels
	// included, or 0 for an empty column.
	MaxOrder(ctx context.Context, s state.State) (int, error)

	// ApplyPositions writes order and state for each position. A position
	// referencing a missing row yields errs.ObjectNotFoundError.
	ApplyPositions(ctx context.Context, positions []workorder.Position) error

	// ReplaceLegacyState relabels every row stored with legacy to canonical.
	ReplaceLegacyState(ctx context.Context, legacy string, canonical state.State) (int64, error)
}
