package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"
)

// technicianField is the name under which clients send the assigned
// technician.
const technicianField = "assignedTechnician"

// resolveTechnician looks name up in the directory and returns the display
// name stored on work orders. Unknown names and admin accounts are rejected
// as invalid input.
func resolveTechnician(ctx context.Context, directory ports.TechnicianDirectory, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errs.NewValueIsRequiredError(technicianField)
	}

	account, err := directory.FindByNameOrLogin(ctx, name)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", errs.NewValueIsInvalidErrorWithCause(technicianField, err)
	}
	if err != nil {
		return "", err
	}

	if account.Role == identity.Admin {
		return "", errs.NewValueIsInvalidErrorWithCause(technicianField,
			fmt.Errorf("%q is an administrator account", name))
	}

	if account.Name != "" {
		return account.Name, nil
	}
	return account.Login, nil
}
