package commands

import (
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
	"workorders/internal/pkg/opt"
)

var ErrUpdateWorkOrderCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderCommand must be created via NewUpdateWorkOrderCommand constructor",
)

// UpdateWorkOrderCommand applies a partial update and, when the patch
// carries a state, a transition. A requested state is normalized and
// validated here, so legacy labels are accepted on input.
type UpdateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	caller identity.Identity
	id     int64
	patch  workorder.Patch
	target opt.Option[state.State]

	guard guard.ConstructorGuard
}

func NewUpdateWorkOrderCommand(caller identity.Identity, id int64, patch workorder.Patch) (UpdateWorkOrderCommand, error) {
	cmd := UpdateWorkOrderCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setID(id),
		cmd.setTarget(patch.State),
	); err != nil {
		return UpdateWorkOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderCommandIsNotConstructed)
}

func (c UpdateWorkOrderCommand) Caller() identity.Identity {
	return c.caller
}

func (c UpdateWorkOrderCommand) ID() int64 {
	return c.id
}

func (c UpdateWorkOrderCommand) Patch() workorder.Patch {
	return c.patch
}

// Target returns the canonical requested state, if any.
func (c UpdateWorkOrderCommand) Target() opt.Option[state.State] {
	return c.target
}

func (c *UpdateWorkOrderCommand) setCaller(caller identity.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateWorkOrderCommand) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid id", id))
	}
	c.id = id
	return nil
}

func (c *UpdateWorkOrderCommand) setTarget(requested opt.Option[string]) error {
	label, ok := requested.Get()
	if !ok {
		return nil
	}

	target, err := state.Parse(label)
	if err != nil {
		return err
	}
	c.target = opt.Some(target)
	return nil
}
