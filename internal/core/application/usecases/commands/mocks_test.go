package commands_test

import (
	"context"
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/identity"
	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id int64) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetForUpdate(ctx context.Context, id int64) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetManyForUpdate(ctx context.Context, ids []int64) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) List(ctx context.Context, technicians ...string) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, technicians)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) NumberExists(ctx context.Context, number workorder.Number) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkOrderRepository) LockColumn(ctx context.Context, s state.State) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) MaxOrder(ctx context.Context, s state.State) (int, error) {
	args := m.Called(ctx, s)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkOrderRepository) ApplyPositions(ctx context.Context, positions []workorder.Position) error {
	args := m.Called(ctx, positions)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) ReplaceLegacyState(
	ctx context.Context,
	legacy string,
	canonical state.State,
) (int64, error) {
	args := m.Called(ctx, legacy, canonical)
	return args.Get(0).(int64), args.Error(1)
}

type MockTechnicianDirectory struct{ mock.Mock }

func (m *MockTechnicianDirectory) FindByNameOrLogin(ctx context.Context, name string) (ports.Account, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(ports.Account), args.Error(1)
}

func (m *MockTechnicianDirectory) ListTechnicians(ctx context.Context) ([]ports.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Account), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockUoW) TechnicianDirectory() ports.TechnicianDirectory {
	args := m.Called()
	return args.Get(0).(ports.TechnicianDirectory)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, msg ports.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func adminCaller(t *testing.T) identity.Identity {
	t.Helper()
	caller, err := identity.NewIdentity(identity.Admin, "Office", "admin")
	require.NoError(t, err)
	return caller
}

func technicianCaller(t *testing.T, name, login string) identity.Identity {
	t.Helper()
	caller, err := identity.NewIdentity(identity.Technician, name, login)
	require.NoError(t, err)
	return caller
}

// storedWorkOrder builds a work order as the repository would return it.
func storedWorkOrder(t *testing.T, id int64, number string, current state.State, order int, technician string) *workorder.WorkOrder {
	t.Helper()
	wo, err := workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:         id,
		Number:     number,
		State:      string(current),
		Order:      order,
		Technician: technician,
		Details: workorder.Details{
			Device:        "Boiler",
			Municipality:  "Valencia",
			CustomerEmail: "marta@example.com",
		},
	})
	require.NoError(t, err)
	return wo
}
