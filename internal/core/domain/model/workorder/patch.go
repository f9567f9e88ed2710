package workorder

import "workorders/internal/pkg/opt"

// Patch is a partial update. Unset fields keep their stored value; set
// fields overwrite it, including with an empty value. The number is not
// patchable.
type Patch struct {
	State      opt.Option[string]
	Technician opt.Option[string]

	Device                opt.Option[string]
	Municipality          opt.Option[string]
	Notes                 opt.Option[string]
	CustomerName          opt.Option[string]
	CustomerEmail         opt.Option[string]
	CustomerTaxID         opt.Option[string]
	DataProtectionConsent opt.Option[bool]

	TechnicianNotes opt.Option[string]

	Report    opt.Option[string]
	Photos    opt.Option[[]string]
	Signature opt.Option[string]
}

// TouchesTechnicianNotes reports whether the patch writes technician notes.
func (p Patch) TouchesTechnicianNotes() bool {
	return p.TechnicianNotes.IsSet()
}

// TouchesVisitReport reports whether the patch writes any visit-report field.
func (p Patch) TouchesVisitReport() bool {
	return p.Report.IsSet() || p.Photos.IsSet() || p.Signature.IsSet()
}

// WithoutTechnicianNotes returns a copy with technician notes unset.
func (p Patch) WithoutTechnicianNotes() Patch {
	p.TechnicianNotes = opt.None[string]()
	return p
}

// WithoutVisitReport returns a copy with every visit-report field unset.
func (p Patch) WithoutVisitReport() Patch {
	p.Report = opt.None[string]()
	p.Photos = opt.None[[]string]()
	p.Signature = opt.None[string]()
	return p
}
