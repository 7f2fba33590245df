package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "staff user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Patient messages
	PatientLookupSuccess = "patient lookup completed"

	// Workflow messages
	WorkflowOpenedSuccess   = "workflow opened"
	WorkflowStateSuccess    = "workflow state fetched"
	SectionUpdatedSuccess   = "section fields updated"
	SectionSavedSuccess     = "section saved"
	PhaseSubmittedSuccess   = "phase submitted"
	GateCheckedSuccess      = "phase gate evaluated"
	DirtyCheckedSuccess     = "dirty state evaluated"
	BaselineRefreshSuccess  = "baseline refreshed"
	HydrationSuccess        = "workflow hydrated from registry"
	PhotoUploadedSuccess    = "otoscopy photo uploaded"
	PhaseSubmittedPartially = "phase submitted with failures, see section outcomes"
)
