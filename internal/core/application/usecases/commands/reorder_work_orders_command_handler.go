package commands

import (
	"context"

	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"
)

const reorderOperation = "reorder work orders"

// ReorderWorkOrdersCommandHandler applies a reorder batch in one
// transaction. Rows are locked in id order and the touched columns in rank
// order, the same order NextSlot takes them, so a batch and a concurrent
// creation cannot deadlock.
//
// Every failure after the batch was validated is returned as
// errs.OperationFailedError wrapping the cause; clients are expected to
// re-fetch the board before retrying.
type ReorderWorkOrdersCommandHandler struct {
	uowFactory  WorkOrderUoWFactory
	policy      services.AccessPolicy
	coordinator services.OrderingCoordinator
}

func NewReorderWorkOrdersCommandHandler(uowFactory WorkOrderUoWFactory) ReorderWorkOrdersCommandHandler {
	return ReorderWorkOrdersCommandHandler{
		uowFactory:  uowFactory,
		policy:      services.NewAccessPolicy(),
		coordinator: services.NewOrderingCoordinator(),
	}
}

func (h ReorderWorkOrdersCommandHandler) Handle(ctx context.Context, command ReorderWorkOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	plan, err := h.coordinator.PlanReorder(command.Moves())
	if err != nil {
		return err
	}

	if err = h.apply(ctx, command, plan); err != nil {
		return errs.NewOperationFailedError(reorderOperation, err)
	}

	return nil
}

func (h ReorderWorkOrdersCommandHandler) apply(
	ctx context.Context,
	command ReorderWorkOrdersCommand,
	plan services.ReorderPlan,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	current, err := repo.GetManyForUpdate(ctx, plan.IDs())
	if err != nil {
		return err
	}
	if err = h.policy.CanReorder(command.Caller(), current); err != nil {
		return err
	}

	positions, columns, err := plan.Resolve(current)
	if err != nil {
		return err
	}

	for _, column := range columns {
		if err = repo.LockColumn(ctx, column); err != nil {
			return err
		}
	}

	if err = repo.ApplyPositions(ctx, positions); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
