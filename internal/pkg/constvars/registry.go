package constvars

// Clinic registry resource paths, relative to the configured base URL.
const (
	ResourcePatients             = "/patients"
	ResourceEarScreenings        = "/ear-screenings"
	ResourceHearingScreenings    = "/hearing-screenings"
	ResourceFittings             = "/fittings"
	ResourceFittingQC            = "/fitting-qc"
	ResourceAftercareAssessments = "/aftercare-assessments"
	ResourceDeviceServices       = "/device-services"
)

// SectionResourcePaths maps a section key to its registry resource. The
// registration section persists as the patient record itself.
var SectionResourcePaths = map[string]string{
	SectionRegistration:        ResourcePatients,
	SectionEarScreening:        ResourceEarScreenings,
	SectionHearingScreening:    ResourceHearingScreenings,
	SectionDeviceFitting:       ResourceFittings,
	SectionFinalQC:             ResourceFittingQC,
	SectionAftercareAssessment: ResourceAftercareAssessments,
	SectionDeviceService:       ResourceDeviceServices,
}

const (
	RegistryQueryClinicRef = "clinicRef"
	RegistryQueryPatientID = "patientId"
	RegistryBundleSuffix   = "/bundle"

	RegistryEnvelopeKey = "envelope"

	RegistryPayloadPatientIDKey      = "patientId"
	RegistryPayloadRegistrationIDKey = "registrationId"

	RegistryLimiterGroup = "REGISTRY"
)
