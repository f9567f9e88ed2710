package workorder

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"workorders/internal/core/domain/model/state"
	"workorders/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder was not built by
	// NewWorkOrder or RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")
)

// MaxOrder bounds order values to what the store column can hold.
const MaxOrder = math.MaxInt32

// Details is the pre-visit content of a work order. These fields are
// editable in every state.
type Details struct {
	Device                string
	Municipality          string
	Notes                 string
	CustomerName          string
	CustomerEmail         string
	CustomerTaxID         string
	DataProtectionConsent bool
}

// Snapshot is the full persisted shape of a work order, used to rebuild the
// aggregate from storage.
type Snapshot struct {
	ID              int64
	Number          string
	State           string
	Order           int
	Technician      string
	Details         Details
	TechnicianNotes string
	Report          string
	Photos          []string
	Signature       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkOrder is a field-service ticket tracked on the board.
//
// Invariants:
//   - state is always canonical once the aggregate exists
//   - number is immutable
//   - device, municipality and technician are never blank
//   - order is within [0, MaxOrder]
type WorkOrder struct {
	id         int64
	number     Number
	state      state.State
	order      int
	technician string

	details Details

	technicianNotes string

	report    string
	photos    []string
	signature string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewWorkOrder creates a work order in the initial state. The order value is
// assigned later by the ordering coordinator through Reposition.
//
// Example:
//
//	number, _ := workorder.NewNumber("123456")
//	wo, err := workorder.NewWorkOrder(number, "Ana Ruiz", workorder.Details{
//	    Device:       "Boiler",
//	    Municipality: "Valencia",
//	})
func NewWorkOrder(number Number, technician string, details Details) (*WorkOrder, error) {
	wo := &WorkOrder{
		state:         state.Initial,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setNumber(number),
		wo.setTechnician(technician),
		wo.setDevice(details.Device),
		wo.setMunicipality(details.Municipality),
	); err != nil {
		return nil, err
	}

	wo.details.Notes = strings.TrimSpace(details.Notes)
	wo.details.CustomerName = strings.TrimSpace(details.CustomerName)
	wo.details.CustomerEmail = strings.TrimSpace(details.CustomerEmail)
	wo.details.CustomerTaxID = strings.TrimSpace(details.CustomerTaxID)
	wo.details.DataProtectionConsent = details.DataProtectionConsent

	return wo, nil
}

// RestoreWorkOrder rebuilds a persisted work order. Legacy state labels are
// normalized here, so no legacy label leaves the store layer.
func RestoreWorkOrder(s Snapshot) (*WorkOrder, error) {
	number, err := NewNumber(s.Number)
	if err != nil {
		return nil, err
	}

	current, err := state.Parse(s.State)
	if err != nil {
		return nil, err
	}

	wo := &WorkOrder{
		id:              s.ID,
		number:          number,
		state:           current,
		order:           s.Order,
		technician:      s.Technician,
		details:         s.Details,
		technicianNotes: s.TechnicianNotes,
		report:          s.Report,
		photos:          slices.Clone(s.Photos),
		signature:       s.Signature,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		isConstructed:   true,
	}

	return wo, nil
}

// Validate ensures the WorkOrder was properly constructed.
func (wo *WorkOrder) Validate() error {
	if wo == nil || !wo.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

func (wo *WorkOrder) ID() int64 {
	return wo.id
}

func (wo *WorkOrder) Number() Number {
	return wo.number
}

func (wo *WorkOrder) State() state.State {
	return wo.state
}

func (wo *WorkOrder) Order() int {
	return wo.order
}

func (wo *WorkOrder) Technician() string {
	return wo.technician
}

func (wo *WorkOrder) Details() Details {
	return wo.details
}

func (wo *WorkOrder) TechnicianNotes() string {
	return wo.technicianNotes
}

func (wo *WorkOrder) Report() string {
	return wo.report
}

func (wo *WorkOrder) Photos() []string {
	return slices.Clone(wo.photos)
}

func (wo *WorkOrder) Signature() string {
	return wo.signature
}

func (wo *WorkOrder) CreatedAt() time.Time {
	return wo.createdAt
}

func (wo *WorkOrder) UpdatedAt() time.Time {
	return wo.updatedAt
}

// MarkPersisted records the store-assigned identity and timestamps.
func (wo *WorkOrder) MarkPersisted(id int64, createdAt, updatedAt time.Time) {
	wo.id = id
	wo.createdAt = createdAt
	wo.updatedAt = updatedAt
}

// Reposition sets the order value inside the current state column.
func (wo *WorkOrder) Reposition(order int) error {
	if order < 0 || order > MaxOrder {
		return errs.NewValueIsOutOfRangeError("order", order, 0, MaxOrder)
	}
	wo.order = order
	return nil
}

// MoveTo changes the state and places the work order at order in the new
// column. Any direction is allowed.
func (wo *WorkOrder) MoveTo(target state.State, order int) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := wo.Reposition(order); err != nil {
		return err
	}
	wo.state = target
	return nil
}

// ApplyContent merges the content fields of p. State is ignored here; state
// changes go through MoveTo so that the order value follows them. Gated
// fields are written as given; gating is the caller's responsibility.
func (wo *WorkOrder) ApplyContent(p Patch) error {
	var errList []error

	if v, ok := p.Technician.Get(); ok {
		errList = append(errList, wo.setTechnician(v))
	}
	if v, ok := p.Device.Get(); ok {
		errList = append(errList, wo.setDevice(v))
	}
	if v, ok := p.Municipality.Get(); ok {
		errList = append(errList, wo.setMunicipality(v))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if v, ok := p.Notes.Get(); ok {
		wo.details.Notes = v
	}
	if v, ok := p.CustomerName.Get(); ok {
		wo.details.CustomerName = strings.TrimSpace(v)
	}
	if v, ok := p.CustomerEmail.Get(); ok {
		wo.details.CustomerEmail = strings.TrimSpace(v)
	}
	if v, ok := p.CustomerTaxID.Get(); ok {
		wo.details.CustomerTaxID = strings.TrimSpace(v)
	}
	if v, ok := p.DataProtectionConsent.Get(); ok {
		wo.details.DataProtectionConsent = v
	}
	if v, ok := p.TechnicianNotes.Get(); ok {
		wo.technicianNotes = v
	}
	if v, ok := p.Report.Get(); ok {
		wo.report = v
	}
	if v, ok := p.Photos.Get(); ok {
		wo.photos = slices.Clone(v)
	}
	if v, ok := p.Signature.Get(); ok {
		wo.signature = v
	}

	return nil
}

func (wo *WorkOrder) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	wo.number = number
	return nil
}

func (wo *WorkOrder) setTechnician(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("technician")
	}
	wo.technician = name
	return nil
}

func (wo *WorkOrder) setDevice(device string) error {
	device = strings.TrimSpace(device)
	if device == "" {
		return errs.NewValueIsRequiredErrorWithCause("device", fmt.Errorf("device description must not be blank"))
	}
	wo.details.Device = device
	return nil
}

func (wo *WorkOrder) setMunicipality(municipality string) error {
	municipality = strings.TrimSpace(municipality)
	if municipality == "" {
		return errs.NewValueIsRequiredError("municipality")
	}
	wo.details.Municipality = municipality
	return nil
}
