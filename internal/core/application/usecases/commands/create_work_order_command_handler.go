package commands

import (
	"context"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"
)

// CreateWorkOrderCommandHandler creates work orders on behalf of admins.
// The technician is resolved against the directory and the new record is
// appended to the end of the initial column.
type CreateWorkOrderCommandHandler struct {
	uowFactory  UoWFactory
	policy      services.AccessPolicy
	coordinator services.OrderingCoordinator
}

func NewCreateWorkOrderCommandHandler(uowFactory UoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory:  uowFactory,
		policy:      services.NewAccessPolicy(),
		coordinator: services.NewOrderingCoordinator(),
	}
}

// Handle returns the persisted work order. A taken number yields
// errs.ConflictError; an unknown or admin technician yields
// errs.ValueIsInvalidError.
func (h CreateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	command CreateWorkOrderCommand,
) (*workorder.WorkOrder, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.CanCreate(command.Caller()); err != nil {
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
	directory := uow.TechnicianDirectory()

	taken, err := repo.NumberExists(ctx, command.Number())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("number", command.Number())
	}

	technician, err := resolveTechnician(ctx, directory, command.Technician())
	if err != nil {
		return nil, err
	}

	wo, err := workorder.NewWorkOrder(command.Number(), technician, command.Details())
	if err != nil {
		return nil, err
	}

	if err = h.coordinator.Place(ctx, repo, wo); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wo, nil
}
