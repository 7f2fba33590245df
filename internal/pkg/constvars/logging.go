package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingPatientIDKey  = "patient_id"
	LoggingClinicRefKey  = "clinic_ref"
	LoggingWorkflowIDKey = "workflow_id"
	LoggingSectionKey    = "section_key"
	LoggingPhaseKey      = "phase_key"
	LoggingBackendIDKey  = "backend_id"
	LoggingResourceKey   = "resource"
	LoggingFieldKey      = "field"
)
