package http

import (
	"fmt"
	"time"

	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/state"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/opt"
)

// WorkOrder is the board view of a work order.
type WorkOrder struct {
	ID                    int64     `json:"id"`
	Number                string    `json:"number"`
	State                 string    `json:"state"`
	Order                 int       `json:"order"`
	AssignedTechnician    string    `json:"assignedTechnician"`
	Device                string    `json:"device"`
	Municipality          string    `json:"municipality"`
	Notes                 string    `json:"notes"`
	CustomerName          string    `json:"customerName"`
	CustomerEmail         string    `json:"customerEmail"`
	CustomerTaxID         string    `json:"customerTaxID"`
	DataProtectionConsent bool      `json:"dataProtectionConsent"`
	TechnicianNotes       string    `json:"technicianNotes"`
	Report                string    `json:"report"`
	Photos                []string  `json:"photos"`
	Signature             string    `json:"signature"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func toWorkOrder(wo *workorder.WorkOrder) WorkOrder {
	d := wo.Details()
	photos := wo.Photos()
	if photos == nil {
		photos = []string{}
	}
	return WorkOrder{
		ID:                    wo.ID(),
		Number:                wo.Number().String(),
		State:                 wo.State().String(),
		Order:                 wo.Order(),
		AssignedTechnician:    wo.Technician(),
		Device:                d.Device,
		Municipality:          d.Municipality,
		Notes:                 d.Notes,
		CustomerName:          d.CustomerName,
		CustomerEmail:         d.CustomerEmail,
		CustomerTaxID:         d.CustomerTaxID,
		DataProtectionConsent: d.DataProtectionConsent,
		TechnicianNotes:       wo.TechnicianNotes(),
		Report:                wo.Report(),
		Photos:                photos,
		Signature:             wo.Signature(),
		CreatedAt:             wo.CreatedAt(),
		UpdatedAt:             wo.UpdatedAt(),
	}
}

func toWorkOrders(list []*workorder.WorkOrder) []WorkOrder {
	out := make([]WorkOrder, len(list))
	for i, wo := range list {
		out[i] = toWorkOrder(wo)
	}
	return out
}

// NewWorkOrder is the creation payload. A state sent by the client is
// ignored; new work orders always start in the initial state.
type NewWorkOrder struct {
	Number                string `json:"number"`
	AssignedTechnician    string `json:"assignedTechnician"`
	Device                string `json:"device"`
	Municipality          string `json:"municipality"`
	Notes                 string `json:"notes"`
	CustomerName          string `json:"customerName"`
	CustomerEmail         string `json:"customerEmail"`
	CustomerTaxID         string `json:"customerTaxID"`
	DataProtectionConsent bool   `json:"dataProtectionConsent"`
}

func (n NewWorkOrder) details() workorder.Details {
	return workorder.Details{
		Device:                n.Device,
		Municipality:          n.Municipality,
		Notes:                 n.Notes,
		CustomerName:          n.CustomerName,
		CustomerEmail:         n.CustomerEmail,
		CustomerTaxID:         n.CustomerTaxID,
		DataProtectionConsent: n.DataProtectionConsent,
	}
}

// WorkOrderPatch is the partial update payload. Omitted fields keep their
// stored value.
type WorkOrderPatch struct {
	State                 opt.Option[string]   `json:"state"`
	AssignedTechnician    opt.Option[string]   `json:"assignedTechnician"`
	Device                opt.Option[string]   `json:"device"`
	Municipality          opt.Option[string]   `json:"municipality"`
	Notes                 opt.Option[string]   `json:"notes"`
	CustomerName          opt.Option[string]   `json:"customerName"`
	CustomerEmail         opt.Option[string]   `json:"customerEmail"`
	CustomerTaxID         opt.Option[string]   `json:"customerTaxID"`
	DataProtectionConsent opt.Option[bool]     `json:"dataProtectionConsent"`
	TechnicianNotes       opt.Option[string]   `json:"technicianNotes"`
	Report                opt.Option[string]   `json:"report"`
	Photos                opt.Option[[]string] `json:"photos"`
	Signature             opt.Option[string]   `json:"signature"`
}

func (p WorkOrderPatch) toDomain() workorder.Patch {
	return workorder.Patch{
		State:                 p.State,
		Technician:            p.AssignedTechnician,
		Device:                p.Device,
		Municipality:          p.Municipality,
		Notes:                 p.Notes,
		CustomerName:          p.CustomerName,
		CustomerEmail:         p.CustomerEmail,
		CustomerTaxID:         p.CustomerTaxID,
		DataProtectionConsent: p.DataProtectionConsent,
		TechnicianNotes:       p.TechnicianNotes,
		Report:                p.Report,
		Photos:                p.Photos,
		Signature:             p.Signature,
	}
}

// ReorderItem is one entry of a bulk reorder request.
type ReorderItem struct {
	ID    int64   `json:"id"`
	Order int     `json:"order"`
	State *string `json:"state,omitempty"`
}

// ReorderRequest is the bulk reorder payload.
type ReorderRequest struct {
	Updates []ReorderItem `json:"updates"`
}

func toMoves(items []ReorderItem) ([]services.Move, error) {
	moves := make([]services.Move, 0, len(items))
	for i, item := range items {
		move := services.Move{ID: item.ID, Order: item.Order}
		if item.State != nil {
			s, err := state.Parse(*item.State)
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("updates[%d].state", i), err)
			}
			move.State = &s
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// Technician is an assignable account.
type Technician struct {
	Name  string `json:"name"`
	Login string `json:"login"`
}

func toTechnicians(list []queries.ListTechniciansQueryResponse) []Technician {
	out := make([]Technician, len(list))
	for i, t := range list {
		out[i] = Technician{Name: t.Name, Login: t.Login}
	}
	return out
}

// StateCount is one row of the stored state distribution.
type StateCount struct {
	Label     string `json:"label"`
	Canonical string `json:"canonical,omitempty"`
	Legacy    bool   `json:"legacy"`
	Count     int64  `json:"count"`
}

func toStateCounts(list []queries.GetStateDistributionQueryResponse) []StateCount {
	out := make([]StateCount, len(list))
	for i, row := range list {
		out[i] = StateCount{
			Label:     row.Label,
			Canonical: string(row.Canonical),
			Legacy:    row.Legacy,
			Count:     row.Count,
		}
	}
	return out
}
