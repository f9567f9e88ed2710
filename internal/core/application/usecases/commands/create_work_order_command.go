package commands

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand registers a new work order in the initial column.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderCommand(caller, "123456", "Ana Ruiz", workorder.Details{
//	    Device:       "Boiler",
//	    Municipality: "Valencia",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid work order: %w", err)
//	}
//
//	wo, err := NewCreateWorkOrderCommandHandler(uowFactory).Handle(ctx, cmd)
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Identity
	number     workorder.Number
	technician string
	details    workorder.Details

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand validates the number format and that a
// technician is named. Device and municipality are checked when the
// aggregate is built.
func NewCreateWorkOrderCommand(
	caller identity.Identity,
	number string,
	technician string,
	details workorder.Details,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setNumber(number),
		cmd.setTechnician(technician),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

func (c CreateWorkOrderCommand) Caller() identity.Identity {
	return c.caller
}

func (c CreateWorkOrderCommand) Number() workorder.Number {
	return c.number
}

// Technician returns the requested technician as typed by the caller.
func (c CreateWorkOrderCommand) Technician() string {
	return c.technician
}

func (c CreateWorkOrderCommand) Details() workorder.Details {
	return c.details
}

func (c *CreateWorkOrderCommand) setCaller(caller identity.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateWorkOrderCommand) setNumber(raw string) error {
	number, err := workorder.NewNumber(raw)
	if err != nil {
		return err
	}
	c.number = number
	return nil
}

func (c *CreateWorkOrderCommand) setTechnician(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError(technicianField)
	}
	c.technician = name
	return nil
}
