package queries

import (
	"context"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
)

type GetWorkOrderQueryHandler struct {
	reader WorkOrderReader
	policy services.AccessPolicy
}

func NewGetWorkOrderQueryHandler(reader WorkOrderReader) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{
		reader: reader,
		policy: services.NewAccessPolicy(),
	}
}

// Handle returns errs.ObjectNotFoundError for unknown ids and
// errs.ForbiddenError when a technician asks for a work order assigned to
// someone else.
func (h GetWorkOrderQueryHandler) Handle(ctx context.Context, query GetWorkOrderQuery) (*workorder.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	wo, err := h.reader.Get(ctx, query.ID())
	if err != nil {
		return nil, err
	}
	if err = h.policy.CanRead(query.Caller(), wo); err != nil {
		return nil, err
	}

	return wo, nil
}
