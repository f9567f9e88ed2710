package queries

import (
	"errors"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/state"
	"workorders/internal/pkg/guard"
)

var ErrGetStateDistributionQueryIsNotConstructed = errors.New(
	"GetStateDistributionQuery must be created via NewGetStateDistributionQuery constructor",
)

// GetStateDistributionQuery counts work orders per stored state label. It
// shows how many rows still carry legacy labels.
//
// Example:
//
//	query, err := NewGetStateDistributionQuery(caller)
//	if err != nil {
//	    return err
//	}
//	rows, err := NewGetStateDistributionQueryHandler(db).Handle(ctx, query)
//	for _, row := range rows {
//	    if row.Legacy {
//	        fmt.Printf("%d rows still labelled %q\n", row.Count, row.Label)
//	    }
//	}
type GetStateDistributionQuery struct {
	caller identity.Identity

	guard guard.ConstructorGuard
}

// NewGetStateDistributionQuery builds the query for caller. The handler
// rejects callers who are not admins.
func NewGetStateDistributionQuery(caller identity.Identity) (GetStateDistributionQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetStateDistributionQuery{}, err
	}
	return GetStateDistributionQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStateDistributionQuery) Validate() error {
	return q.guard.Validate(ErrGetStateDistributionQueryIsNotConstructed)
}

// GetStateDistributionQueryResponse is the count of one stored label.
// Canonical is empty when the label is not recognized at all.
type GetStateDistributionQueryResponse struct {
	Label     string
	Canonical state.State
	Legacy    bool
	Count     int64
}
