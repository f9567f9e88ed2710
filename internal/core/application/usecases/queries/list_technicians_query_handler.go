package queries

import (
	"context"

	"workorders/internal/core/domain/services"
	"workorders/internal/core/ports"
)

// ListTechniciansQueryResponse is one assignable account.
type ListTechniciansQueryResponse struct {
	Name  string
	Login string
}

type ListTechniciansQueryHandler struct {
	directory ports.TechnicianDirectory
	policy    services.AccessPolicy
}

func NewListTechniciansQueryHandler(directory ports.TechnicianDirectory) ListTechniciansQueryHandler {
	return ListTechniciansQueryHandler{
		directory: directory,
		policy:    services.NewAccessPolicy(),
	}
}

// Handle lists non-admin accounts ordered by name. Admins only.
func (h ListTechniciansQueryHandler) Handle(
	ctx context.Context,
	query ListTechniciansQuery,
) ([]ListTechniciansQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.CanListTechnicians(query.Caller()); err != nil {
		return nil, err
	}

	accounts, err := h.directory.ListTechnicians(ctx)
	if err != nil {
		return nil, err
	}

	technicians := make([]ListTechniciansQueryResponse, 0, len(accounts))
	for _, account := range accounts {
		technicians = append(technicians, ListTechniciansQueryResponse{
			Name:  account.Name,
			Login: account.Login,
		})
	}

	return technicians, nil
}
