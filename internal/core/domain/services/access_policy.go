package services

import (
	"fmt"

	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"
)

// AccessPolicy decides what a caller may see and change.
//
// Rules:
//   - Admins may list, read, update and delete any work order, and are the
//     only callers allowed to create work orders, assign technicians, list
//     technicians or inspect stored state labels.
//   - Technicians only see and update work orders assigned to them, matched
//     by display name or login ignoring case and spacing.
//   - Technician notes and visit-report fields are dropped from a patch
//     whose resulting state is initial.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// ListScope returns the technician names a listing is restricted to. An
// empty result means no restriction. The requested filter is honored for
// admins and ignored for technicians.
func (AccessPolicy) ListScope(caller identity.Identity, requested string) ([]string, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	if caller.IsAdmin() {
		if identity.NameKey(requested) == "" {
			return nil, nil
		}
		return []string{requested}, nil
	}

	names := []string{caller.EffectiveName()}
	if caller.Login() != "" && !identity.NamesMatch(caller.Login(), caller.EffectiveName()) {
		names = append(names, caller.Login())
	}
	return names, nil
}

// CanRead allows admins and the assigned technician.
func (p AccessPolicy) CanRead(caller identity.Identity, wo *workorder.WorkOrder) error {
	return p.requireOwnership(caller, wo, "read")
}

// CanUpdate allows admins and the assigned technician.
func (p AccessPolicy) CanUpdate(caller identity.Identity, wo *workorder.WorkOrder) error {
	return p.requireOwnership(caller, wo, "update")
}

// CanReorder requires update rights on every work order of the batch.
func (p AccessPolicy) CanReorder(caller identity.Identity, records []*workorder.WorkOrder) error {
	for _, wo := range records {
		if err := p.requireOwnership(caller, wo, "reorder"); err != nil {
			return err
		}
	}
	return nil
}

func (AccessPolicy) CanCreate(caller identity.Identity) error {
	return requireAdmin(caller, "create work orders")
}

func (AccessPolicy) CanDelete(caller identity.Identity) error {
	return requireAdmin(caller, "delete work orders")
}

func (AccessPolicy) CanAssignTechnician(caller identity.Identity) error {
	return requireAdmin(caller, "assign technicians")
}

func (AccessPolicy) CanListTechnicians(caller identity.Identity) error {
	return requireAdmin(caller, "list technicians")
}

func (AccessPolicy) CanInspectStates(caller identity.Identity) error {
	return requireAdmin(caller, "inspect state labels")
}

// GatePatch strips the fields that the resulting state does not open. The
// stripped fields are ignored rather than rejected.
func (AccessPolicy) GatePatch(p workorder.Patch, resulting state.State) workorder.Patch {
	if !resulting.AllowsTechnicianNotes() {
		p = p.WithoutTechnicianNotes()
	}
	if !resulting.AllowsVisitReport() {
		p = p.WithoutVisitReport()
	}
	return p
}

func (AccessPolicy) requireOwnership(caller identity.Identity, wo *workorder.WorkOrder, action string) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if err := wo.Validate(); err != nil {
		return err
	}
	if caller.IsAdmin() || caller.Owns(wo.Technician()) {
		return nil
	}
	return errs.NewForbiddenError(fmt.Sprintf("%s work order %d", action, wo.ID()))
}

func requireAdmin(caller identity.Identity, action string) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return errs.NewForbiddenError(action)
	}
	return nil
}
