package models

// AftercareReminder is queued when a patient's fitting phase fully
// completes, so the aftercare team can schedule the follow-up visit.
type AftercareReminder struct {
	PatientID  int64  `json:"patient_id"`
	ClinicRef  string `json:"clinic_ref"`
	FittingID  int64  `json:"fitting_id,omitempty"`
	DueDate    string `json:"due_date"`
	ClinicSite string `json:"clinic_site,omitempty"`
}
