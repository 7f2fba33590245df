package responses

type PatientLookup struct {
	Found     bool   `json:"found"`
	PatientID int64  `json:"patient_id,omitempty"`
	ClinicRef string `json:"clinic_ref"`
}
