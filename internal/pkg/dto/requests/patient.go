package requests

type LookupPatient struct {
	ClinicRef string `json:"clinic_ref" validate:"required,clinic_ref"`
}
