package queries

import (
	"errors"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/pkg/guard"
)

var ErrListTechniciansQueryIsNotConstructed = errors.New(
	"ListTechniciansQuery must be created via NewListTechniciansQuery constructor",
)

// ListTechniciansQuery feeds the technician picker of the admin board.
type ListTechniciansQuery struct {
	caller identity.Identity
	guard  guard.ConstructorGuard
}

func NewListTechniciansQuery(caller identity.Identity) (ListTechniciansQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListTechniciansQuery{}, err
	}
	return ListTechniciansQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTechniciansQuery) Validate() error {
	return q.guard.Validate(ErrListTechniciansQueryIsNotConstructed)
}

func (q ListTechniciansQuery) Caller() identity.Identity {
	return q.caller
}
