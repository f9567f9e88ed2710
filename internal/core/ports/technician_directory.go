package ports

import (
	"context"

	"workorders/internal/core/domain/model/identity"
)

// Account is an entry of the user directory.
type Account struct {
	Name  string
	Login string
	Role  identity.Role
}

// TechnicianDirectory resolves technician names against user accounts.
type TechnicianDirectory interface {
	// FindByNameOrLogin matches either the display name or the login and
	// returns errs.ObjectNotFoundError when nothing matches.
	FindByNameOrLogin(ctx context.Context, name string) (Account, error)

	// ListTechnicians returns every non-admin account ordered by name.
	ListTechnicians(ctx context.Context) ([]Account, error)
}
