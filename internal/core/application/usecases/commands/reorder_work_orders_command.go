package commands

import (
	"errors"
	"slices"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/guard"
)

var ErrReorderWorkOrdersCommandIsNotConstructed = errors.New(
	"ReorderWorkOrdersCommand must be created via NewReorderWorkOrdersCommand constructor",
)

// ReorderWorkOrdersCommand carries a drag-and-drop batch: new order values
// and optionally new states. The batch is applied entirely or not at all.
type ReorderWorkOrdersCommand struct { //nolint:recvcheck //using for validation
	caller identity.Identity
	moves  []services.Move

	guard guard.ConstructorGuard
}

// NewReorderWorkOrdersCommand only checks the caller; the moves are
// validated as a whole by the handler.
func NewReorderWorkOrdersCommand(caller identity.Identity, moves []services.Move) (ReorderWorkOrdersCommand, error) {
	if err := caller.Validate(); err != nil {
		return ReorderWorkOrdersCommand{}, err
	}

	return ReorderWorkOrdersCommand{
		caller: caller,
		moves:  slices.Clone(moves),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ReorderWorkOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReorderWorkOrdersCommandIsNotConstructed)
}

func (c ReorderWorkOrdersCommand) Caller() identity.Identity {
	return c.caller
}

func (c ReorderWorkOrdersCommand) Moves() []services.Move {
	return slices.Clone(c.moves)
}
