package patients

import "audicare-service/internal/app/models"

// ResolveIdentity picks the authoritative patient identity among the three
// possible candidates. A registration performed in this session always wins,
// then an explicit clinic-ref lookup, then an identifier already present in
// form state. Unresolved candidates never shadow a resolved lower one.
func ResolveIdentity(registered, searched, formValue *models.PatientIdentity) *models.PatientIdentity {
	if registered.Resolved() {
		return registered
	}
	if searched.Resolved() {
		return searched
	}
	if formValue.Resolved() {
		return formValue
	}
	return nil
}
