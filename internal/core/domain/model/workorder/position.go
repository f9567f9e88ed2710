package workorder

import "workorders/internal/core/domain/model/state"

// Position is the resolved placement of one work order in a bulk reorder.
type Position struct {
	ID    int64
	Order int
	State state.State
}
