package queries

import (
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery reads one work order.
type GetWorkOrderQuery struct {
	caller identity.Identity
	id     int64

	guard guard.ConstructorGuard
}

func NewGetWorkOrderQuery(caller identity.Identity, id int64) (GetWorkOrderQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}
	if id <= 0 {
		return GetWorkOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid id", id))
	}

	return GetWorkOrderQuery{
		caller: caller,
		id:     id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

func (q GetWorkOrderQuery) Caller() identity.Identity {
	return q.caller
}

func (q GetWorkOrderQuery) ID() int64 {
	return q.id
}
