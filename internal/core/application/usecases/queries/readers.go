// Package queries contains read-only work-order operations. Board reads go
// through the store so that legacy labels are normalized and the board
// order is applied in one place; diagnostics read raw rows with SQL.
package queries

import (
	"context"

	"workorders/internal/core/domain/model/workorder"
)

// WorkOrderReader is the read side of the work-order store.
type WorkOrderReader interface {
	Get(ctx context.Context, id int64) (*workorder.WorkOrder, error)
	List(ctx context.Context, technicians ...string) ([]*workorder.WorkOrder, error)
}
