package commands_test

import (
	"errors"
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/opt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateCommand(
	t *testing.T,
	caller identity.Identity,
	id int64,
	patch workorder.Patch,
) commands.UpdateWorkOrderCommand {
	t.Helper()
	cmd, err := commands.NewUpdateWorkOrderCommand(caller, id, patch)
	require.NoError(t, err)
	return cmd
}

func TestUpdateWorkOrderCommandHandler_Handle_TransitionAppendsToTargetColumn(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, technicianCaller(t, "Ana Ruiz", "aruiz"), 7, workorder.Patch{
		State:  opt.Some("reviewing"),
		Report: opt.Some("Replaced valve"),
	})

	current := storedWorkOrder(t, 7, "123456", state.Initial, 2, "ana ruiz")
	fresh := storedWorkOrder(t, 7, "123456", state.Reviewing, 10, "ana ruiz")

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, int64(7)).Return(current, nil).Once(),
		repo.On("LockColumn", ctx, state.Reviewing).Return(nil).Once(),
		repo.On("MaxOrder", ctx, state.Reviewing).Return(9, nil).Once(),
		repo.On("Update", ctx, current).Return(nil).Once(),
		repo.On("Get", ctx, int64(7)).Return(fresh, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	updated, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, fresh, updated)
	assert.Equal(t, state.Reviewing, current.State())
	assert.Equal(t, 10, current.Order())
	assert.Equal(t, "Replaced valve", current.Report(), "report is open once the work order leaves initial")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateWorkOrderCommandHandler_Handle_SameStateKeepsOrder(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, adminCaller(t), 7, workorder.Patch{
		State:  opt.Some("reviewed"),
		Device: opt.Some("Water heater"),
	})

	current := storedWorkOrder(t, 7, "123456", state.Reviewing, 3, "Ana Ruiz")

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, int64(7)).Return(current, nil).Once()
	repo.On("Update", ctx, current).Return(nil).Once()
	repo.On("Get", ctx, int64(7)).Return(current, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, current.Order())
	assert.Equal(t, "Water heater", current.Details().Device)
	repo.AssertNotCalled(t, "LockColumn", mock.Anything, mock.Anything)
}

func TestUpdateWorkOrderCommandHandler_Handle_InitialStateDropsGatedFields(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, adminCaller(t), 7, workorder.Patch{
		TechnicianNotes: opt.Some("Bring ladder"),
		Signature:       opt.Some("sig"),
		Notes:           opt.Some("Call first"),
	})

	current := storedWorkOrder(t, 7, "123456", state.Initial, 1, "Ana Ruiz")

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, int64(7)).Return(current, nil).Once()
	repo.On("Update", ctx, current).Return(nil).Once()
	repo.On("Get", ctx, int64(7)).Return(current, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, current.TechnicianNotes())
	assert.Empty(t, current.Signature())
	assert.Equal(t, "Call first", current.Details().Notes)
}

func TestUpdateWorkOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, technicianCaller(t, "Luis Gil", "lgil"), 7, workorder.Patch{})

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, int64(7)).
			Return(storedWorkOrder(t, 7, "123456", state.Initial, 1, "Ana Ruiz"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateWorkOrderCommandHandler_Handle_TechnicianCannotReassign(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, technicianCaller(t, "Ana Ruiz", "aruiz"), 7, workorder.Patch{
		Technician: opt.Some("Luis Gil"),
	})

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, int64(7)).
		Return(storedWorkOrder(t, 7, "123456", state.Initial, 1, "Ana Ruiz"), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "TechnicianDirectory")
}

func TestUpdateWorkOrderCommandHandler_Handle_AdminReassigns(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, adminCaller(t), 7, workorder.Patch{Technician: opt.Some("lgil")})

	current := storedWorkOrder(t, 7, "123456", state.Initial, 1, "Ana Ruiz")

	repo := new(MockWorkOrderRepository)
	directory := new(MockTechnicianDirectory)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	uow.On("TechnicianDirectory").Return(directory).Once()
	repo.On("GetForUpdate", ctx, int64(7)).Return(current, nil).Once()
	directory.On("FindByNameOrLogin", ctx, "lgil").
		Return(ports.Account{Name: "Luis Gil", Login: "lgil", Role: identity.Technician}, nil).Once()
	repo.On("Update", ctx, current).Return(nil).Once()
	repo.On("Get", ctx, int64(7)).Return(current, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Luis Gil", current.Technician())
}

func TestUpdateWorkOrderCommandHandler_Handle_BlankReassignment(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, adminCaller(t), 7, workorder.Patch{Technician: opt.Some("   ")})

	current := storedWorkOrder(t, 7, "123456", state.Initial, 1, "Ana Ruiz")

	repo := new(MockWorkOrderRepository)
	directory := new(MockTechnicianDirectory)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	uow.On("TechnicianDirectory").Return(directory).Once()
	repo.On("GetForUpdate", ctx, int64(7)).Return(current, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, "assignedTechnician", required.ParamName)
	assert.Equal(t, "Ana Ruiz", current.Technician())
	directory.AssertNotCalled(t, "FindByNameOrLogin", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateWorkOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, adminCaller(t), 404, workorder.Patch{})

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("work order", int64(404))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateWorkOrderCommandHandler_Handle_BlankDeviceRejected(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, adminCaller(t), 7, workorder.Patch{Device: opt.Some("  ")})

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, int64(7)).
		Return(storedWorkOrder(t, 7, "123456", state.Initial, 1, "Ana Ruiz"), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateWorkOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	cmd := newUpdateCommand(t, adminCaller(t), 7, workorder.Patch{})

	repo := new(MockWorkOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, int64(7)).
		Return(storedWorkOrder(t, 7, "123456", state.Initial, 1, "Ana Ruiz"), nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*workorder.WorkOrder")).Return(errors.New("database error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewUpdateWorkOrderCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
