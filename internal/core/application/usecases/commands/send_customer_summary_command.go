package commands

import (
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrSendCustomerSummaryCommandIsNotConstructed = errors.New(
	"SendCustomerSummaryCommand must be created via NewSendCustomerSummaryCommand constructor",
)

// SendCustomerSummaryCommand mails the visit outcome of a work order to its
// customer.
type SendCustomerSummaryCommand struct { //nolint:recvcheck //using for validation
	caller identity.Identity
	id     int64

	guard guard.ConstructorGuard
}

func NewSendCustomerSummaryCommand(caller identity.Identity, id int64) (SendCustomerSummaryCommand, error) {
	if err := caller.Validate(); err != nil {
		return SendCustomerSummaryCommand{}, err
	}
	if id <= 0 {
		return SendCustomerSummaryCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not a valid id", id))
	}

	return SendCustomerSummaryCommand{
		caller: caller,
		id:     id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SendCustomerSummaryCommand) Validate() error {
	return c.guard.Validate(ErrSendCustomerSummaryCommandIsNotConstructed)
}

func (c SendCustomerSummaryCommand) Caller() identity.Identity {
	return c.caller
}

func (c SendCustomerSummaryCommand) ID() int64 {
	return c.id
}
