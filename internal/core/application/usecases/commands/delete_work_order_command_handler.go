package commands

import (
	"context"

	"workorders/internal/core/domain/services"
)

// DeleteWorkOrderCommandHandler removes work orders. The remaining orders of
// the column keep their values; the gap is left as is.
type DeleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) DeleteWorkOrderCommandHandler {
	return DeleteWorkOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle reports whether the work order existed. Deleting a missing work
// order is not an error.
func (h DeleteWorkOrderCommandHandler) Handle(ctx context.Context, command DeleteWorkOrderCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}
	if err := h.policy.CanDelete(command.Caller()); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existed, err := uow.WorkOrderRepository().Delete(ctx, command.ID())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return existed, nil
}
