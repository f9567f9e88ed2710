package commands

import (
	"context"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/opt"
)

// UpdateWorkOrderCommandHandler edits a work order and moves it between
// columns. The row is locked for the whole operation; a state change
// appends the work order to the end of the destination column.
type UpdateWorkOrderCommandHandler struct {
	uowFactory  UoWFactory
	policy      services.AccessPolicy
	coordinator services.OrderingCoordinator
}

func NewUpdateWorkOrderCommandHandler(uowFactory UoWFactory) UpdateWorkOrderCommandHandler {
	return UpdateWorkOrderCommandHandler{
		uowFactory:  uowFactory,
		policy:      services.NewAccessPolicy(),
		coordinator: services.NewOrderingCoordinator(),
	}
}

// Handle returns the work order as stored after the update.
//
// Technician notes and visit-report fields are dropped from the patch when
// the resulting state is initial. Reassigning the technician is reserved to
// admins and the new name must resolve in the directory.
func (h UpdateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	command UpdateWorkOrderCommand,
) (*workorder.WorkOrder, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	wo, err := repo.GetForUpdate(ctx, command.ID())
	if err != nil {
		return nil, err
	}
	if err = h.policy.CanUpdate(command.Caller(), wo); err != nil {
		return nil, err
	}

	patch := command.Patch()
	if requested, ok := patch.Technician.Get(); ok {
		if err = h.policy.CanAssignTechnician(command.Caller()); err != nil {
			return nil, err
		}
		technician, resolveErr := resolveTechnician(ctx, uow.TechnicianDirectory(), requested)
		if resolveErr != nil {
			return nil, resolveErr
		}
		patch.Technician = opt.Some(technician)
	}

	target := command.Target().OrElse(wo.State())
	patch = h.policy.GatePatch(patch, target)

	if err = wo.ApplyContent(patch); err != nil {
		return nil, err
	}
	if _, err = h.coordinator.Reslot(ctx, repo, wo, target); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, wo); err != nil {
		return nil, err
	}

	updated, err := repo.Get(ctx, wo.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
