package http_test

import (
	"context"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/mock"
)

type MockCreateWorkOrder struct{ mock.Mock }

func (m *MockCreateWorkOrder) Handle(ctx context.Context, cmd commands.CreateWorkOrderCommand) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, cmd)
	wo, _ := args.Get(0).(*workorder.WorkOrder)
	return wo, args.Error(1)
}

type MockUpdateWorkOrder struct{ mock.Mock }

func (m *MockUpdateWorkOrder) Handle(ctx context.Context, cmd commands.UpdateWorkOrderCommand) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, cmd)
	wo, _ := args.Get(0).(*workorder.WorkOrder)
	return wo, args.Error(1)
}

type MockReorderWorkOrders struct{ mock.Mock }

func (m *MockReorderWorkOrders) Handle(ctx context.Context, cmd commands.ReorderWorkOrdersCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteWorkOrder struct{ mock.Mock }

func (m *MockDeleteWorkOrder) Handle(ctx context.Context, cmd commands.DeleteWorkOrderCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}

type MockSendCustomerSummary struct{ mock.Mock }

func (m *MockSendCustomerSummary) Handle(ctx context.Context, cmd commands.SendCustomerSummaryCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListWorkOrders struct{ mock.Mock }

func (m *MockListWorkOrders) Handle(ctx context.Context, q queries.ListWorkOrdersQuery) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]*workorder.WorkOrder)
	return list, args.Error(1)
}

type MockGetWorkOrder struct{ mock.Mock }

func (m *MockGetWorkOrder) Handle(ctx context.Context, q queries.GetWorkOrderQuery) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, q)
	wo, _ := args.Get(0).(*workorder.WorkOrder)
	return wo, args.Error(1)
}

type MockListTechnicians struct{ mock.Mock }

func (m *MockListTechnicians) Handle(
	ctx context.Context,
	q queries.ListTechniciansQuery,
) ([]queries.ListTechniciansQueryResponse, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]queries.ListTechniciansQueryResponse)
	return list, args.Error(1)
}

type MockGetStateDistribution struct{ mock.Mock }

func (m *MockGetStateDistribution) Handle(
	ctx context.Context,
	q queries.GetStateDistributionQuery,
) ([]queries.GetStateDistributionQueryResponse, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]queries.GetStateDistributionQueryResponse)
	return list, args.Error(1)
}
