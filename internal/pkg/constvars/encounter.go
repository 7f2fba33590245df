package constvars

// Phase keys, ordered. A later phase is only actionable once the earlier
// phase's prerequisite section has a persisted record.
const (
	PhaseScreening = "screening"
	PhaseFitting   = "fitting"
	PhaseAftercare = "aftercare"
)

// Section keys, unique within their phase.
const (
	SectionRegistration        = "registration"
	SectionEarScreening        = "ear_screening"
	SectionHearingScreening    = "hearing_screening"
	SectionDeviceFitting       = "device_fitting"
	SectionFinalQC             = "final_qc"
	SectionAftercareAssessment = "aftercare_assessment"
	SectionDeviceService       = "device_service"
)

// PhaseOrder lists the phases in workflow order.
var PhaseOrder = []string{PhaseScreening, PhaseFitting, PhaseAftercare}

// PhaseSections maps each phase to its sections in submission order. The
// first section of the screening phase is the registration section, whose
// created record supplies the patient identifier referenced by siblings.
var PhaseSections = map[string][]string{
	PhaseScreening: {SectionRegistration, SectionEarScreening, SectionHearingScreening},
	PhaseFitting:   {SectionDeviceFitting, SectionFinalQC},
	PhaseAftercare: {SectionAftercareAssessment, SectionDeviceService},
}

// PhasePrerequisiteSection names the earlier-phase section whose persisted
// record gates each phase. The screening phase has no prerequisite.
var PhasePrerequisiteSection = map[string]string{
	PhaseFitting:   SectionRegistration,
	PhaseAftercare: SectionDeviceFitting,
}

// SectionNeedsRegistrationRef lists the sections whose registry resources
// keep a reference back to the registration record. Later-phase resources
// relate through the patient identifier alone.
var SectionNeedsRegistrationRef = map[string]bool{
	SectionEarScreening:     true,
	SectionHearingScreening: true,
}

// SectionPhase is the reverse index of PhaseSections.
var SectionPhase = map[string]string{
	SectionRegistration:        PhaseScreening,
	SectionEarScreening:        PhaseScreening,
	SectionHearingScreening:    PhaseScreening,
	SectionDeviceFitting:       PhaseFitting,
	SectionFinalQC:             PhaseFitting,
	SectionAftercareAssessment: PhaseAftercare,
	SectionDeviceService:       PhaseAftercare,
}
