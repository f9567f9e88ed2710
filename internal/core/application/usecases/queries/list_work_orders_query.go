package queries

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/pkg/guard"
)

var ErrListWorkOrdersQueryIsNotConstructed = errors.New(
	"ListWorkOrdersQuery must be created via NewListWorkOrdersQuery constructor",
)

// ListWorkOrdersQuery reads the board. Technician is an optional filter that
// only admins can use; technicians always get their own work orders.
//
// Example:
//
//	query, err := NewListWorkOrdersQuery(caller, "")
//	board, err := NewListWorkOrdersQueryHandler(repo).Handle(ctx, query)
//	for _, wo := range board {
//	    fmt.Printf("%s %s #%d\n", wo.State(), wo.Number(), wo.Order())
//	}
type ListWorkOrdersQuery struct {
	caller     identity.Identity
	technician string

	guard guard.ConstructorGuard
}

func NewListWorkOrdersQuery(caller identity.Identity, technician string) (ListWorkOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListWorkOrdersQuery{}, err
	}

	return ListWorkOrdersQuery{
		caller:     caller,
		technician: strings.TrimSpace(technician),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkOrdersQueryIsNotConstructed)
}

func (q ListWorkOrdersQuery) Caller() identity.Identity {
	return q.caller
}

func (q ListWorkOrdersQuery) Technician() string {
	return q.technician
}
