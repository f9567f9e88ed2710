package commands

import (
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrDeleteWorkOrderCommandIsNotConstructed = errors.New(
	"DeleteWorkOrderCommand must be created via NewDeleteWorkOrderCommand constructor",
)

// DeleteWorkOrderCommand hard-deletes a work order. Only admins may run it.
type DeleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	caller identity.Identity
	id     int64

	guard guard.ConstructorGuard
}

func NewDeleteWorkOrderCommand(caller identity.Identity, id int64) (DeleteWorkOrderCommand, error) {
	if err := caller.Validate(); err != nil {
		return DeleteWorkOrderCommand{}, err
	}
	if id <= 0 {
		return DeleteWorkOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid id", id))
	}

	return DeleteWorkOrderCommand{
		caller: caller,
		id:     id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkOrderCommandIsNotConstructed)
}

func (c DeleteWorkOrderCommand) Caller() identity.Identity {
	return c.caller
}

func (c DeleteWorkOrderCommand) ID() int64 {
	return c.id
}
