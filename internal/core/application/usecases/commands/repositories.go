// Package commands contains the work-order operations that modify state.
// Every handler follows the same shape: validate the command, open a unit
// of work, consult the access policy, mutate through the store and commit.
package commands

import (
	"context"

	"workorders/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides the work-order store within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// TechnicianDirectoryFactory provides the technician directory within a
	// transaction.
	TechnicianDirectoryFactory interface {
		TechnicianDirectory() ports.TechnicianDirectory
	}

	// WorkOrderUoW is used by operations that only touch work orders.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work-order units of work.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// UoW is used by operations that also resolve technicians, such as
	// creation and reassignment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   account, err := uow.TechnicianDirectory().FindByNameOrLogin(ctx, name)
	//   err = uow.WorkOrderRepository().Add(ctx, wo)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		WorkOrderRepoFactory
		TechnicianDirectoryFactory
	}

	// UoWFactory creates new units of work for operations spanning the
	// store and the directory.
	UoWFactory interface {
		Create() UoW
	}
)
