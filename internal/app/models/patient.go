package models

// IdentitySource records which candidate produced the resolved identity.
// Precedence, highest first: a registration performed in this session, an
// explicit lookup by clinic reference, a value already sitting in form state.
type IdentitySource string

const (
	IdentitySourceRegistered IdentitySource = "registered"
	IdentitySourceSearched   IdentitySource = "searched"
	IdentitySourceFormValue  IdentitySource = "form_value"
)

// PatientIdentity is the single authoritative patient identifier a workflow
// operates on, plus the human-entered lookup key used to find it.
type PatientIdentity struct {
	PatientID int64          `json:"patient_id"`
	ClinicRef string         `json:"clinic_ref"`
	Source    IdentitySource `json:"source"`
}

// Resolved reports whether an authoritative backend identifier is present.
func (p *PatientIdentity) Resolved() bool {
	return p != nil && p.PatientID > 0
}
