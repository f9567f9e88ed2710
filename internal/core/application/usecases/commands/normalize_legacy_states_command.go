package commands

import (
	"errors"

	"workorders/internal/pkg/guard"
)

var ErrNormalizeLegacyStatesCommandIsNotConstructed = errors.New(
	"NormalizeLegacyStatesCommand must be created via NewNormalizeLegacyStatesCommand constructor",
)

// NormalizeLegacyStatesCommand rewrites legacy state labels still present
// in the store to their canonical form. It is run from the CLI or the sweep
// job, never on behalf of a request caller.
type NormalizeLegacyStatesCommand struct {
	guard guard.ConstructorGuard
}

func NewNormalizeLegacyStatesCommand() NormalizeLegacyStatesCommand {
	return NormalizeLegacyStatesCommand{guard: guard.NewConstructorGuard()}
}

func (c NormalizeLegacyStatesCommand) Validate() error {
	return c.guard.Validate(ErrNormalizeLegacyStatesCommandIsNotConstructed)
}
