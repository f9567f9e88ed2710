package queries

import (
	"context"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
)

// ListWorkOrdersQueryHandler returns the board sorted by state rank, then
// manual order, then newest first.
type ListWorkOrdersQueryHandler struct {
	reader WorkOrderReader
	policy services.AccessPolicy
}

func NewListWorkOrdersQueryHandler(reader WorkOrderReader) ListWorkOrdersQueryHandler {
	return ListWorkOrdersQueryHandler{
		reader: reader,
		policy: services.NewAccessPolicy(),
	}
}

func (h ListWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListWorkOrdersQuery,
) ([]*workorder.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := h.policy.ListScope(query.Caller(), query.Technician())
	if err != nil {
		return nil, err
	}

	return h.reader.List(ctx, scope...)
}
