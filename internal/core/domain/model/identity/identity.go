// Package identity describes the authenticated caller of a work-order
// operation and how technician names are compared.
//
// Technician ownership is matched by display name rather than by a stable
// account id. This is a known weakness of the underlying schema: renaming an
// account detaches it from its work orders.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"

	"golang.org/x/text/cases"
)

var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Role is the authority level of a caller.
type Role string

const (
	Admin      Role = "admin"
	Technician Role = "technician"
)

// ParseRole accepts "admin", "technician" and the legacy "user" spelling.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return Admin, nil
	case "technician", "user":
		return Technician, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", raw))
	}
}

// Identity is the caller attached to a request.
type Identity struct {
	role  Role
	name  string
	login string
	guard guard.ConstructorGuard
}

// NewIdentity builds a caller identity. At least one of name and login must
// be non-blank.
func NewIdentity(role Role, name, login string) (Identity, error) {
	if role != Admin && role != Technician {
		return Identity{}, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", role))
	}

	id := Identity{
		role:  role,
		name:  strings.TrimSpace(name),
		login: strings.TrimSpace(login),
		guard: guard.NewConstructorGuard(),
	}
	if id.EffectiveName() == "" {
		return Identity{}, errs.NewValueIsRequiredError("name")
	}

	return id, nil
}

// Validate ensures the identity was created through NewIdentity.
func (i Identity) Validate() error {
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

func (i Identity) Role() Role {
	return i.role
}

func (i Identity) Name() string {
	return i.name
}

func (i Identity) Login() string {
	return i.login
}

func (i Identity) IsAdmin() bool {
	return i.role == Admin
}

// EffectiveName is the display name when present, otherwise the login.
func (i Identity) EffectiveName() string {
	if i.name != "" {
		return i.name
	}
	return i.login
}

// Owns reports whether technician refers to this caller. Both the display
// name and the login are accepted.
func (i Identity) Owns(technician string) bool {
	return NamesMatch(technician, i.EffectiveName()) || NamesMatch(technician, i.login)
}

// NameKey folds case and collapses whitespace so that two spellings of the
// same name compare equal.
func NameKey(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// NamesMatch compares two names by NameKey. Blank names never match.
func NamesMatch(a, b string) bool {
	ka := NameKey(a)
	return ka != "" && ka == NameKey(b)
}
