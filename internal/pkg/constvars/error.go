package constvars

// Client-facing messages. Rendered next to the control or section the
// failure concerns, so they stay action-oriented and plain.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session has expired, please log in again"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientUsernameAlreadyExists         = "Username already registered"

	ErrClientPatientNotFound        = "No patient found for that clinic reference, please check the ID or register the patient"
	ErrClientPatientIdentityMissing = "No patient is loaded yet, please look up or register a patient first"
	ErrClientWorkflowNotFound       = "This workflow is no longer open, please reload the patient"
	ErrClientUnknownSection         = "Unknown encounter section"
	ErrClientUnknownPhase           = "Unknown encounter phase"
	ErrClientSectionSaveFailed      = "Could not save this section, please try again"
	ErrClientPhaseBlocked           = "The earlier phase must be completed before working on this one"
	ErrClientPhasePending           = "Still checking the earlier phase, please wait a moment"
	ErrClientPrerequisiteCheckDown  = "Could not verify the earlier phase because the clinic registry is unreachable, please retry"
	ErrClientRegistryUnavailable    = "The clinic registry is unreachable, please check connectivity and retry"
	ErrClientRegistryOverQuota      = "Too many registry requests at once, please wait a moment and retry"
	ErrClientInvalidImageFormat     = "Unsupported image, please upload a JPEG or PNG"
	ErrClientImageTooLarge          = "Image exceeds the maximum upload size"
)

// Developer-facing messages, logged but only exposed outside production.
const (
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseJSON         = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON       = "failed to marshal value to JSON"
	ErrDevBuildHTTPRequest        = "failed to build HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevDecodeResponse          = "failed to decode response body for %s"
	ErrDevDecodeEnvelope          = "failed to decode response envelope"
	ErrDevServerDeadlineExceeded  = "operation exceeded its deadline"
	ErrDevRegistryNotFound        = "registry resource not found: %s"
	ErrDevRegistryRejected        = "registry rejected the payload for %s"
	ErrDevRegistryUnavailable     = "registry request failed for %s"
	ErrDevRegistryOverQuota       = "registry request over outbound quota"
	ErrDevPatientIdentityMissing  = "no resolved patient identity on the workflow"
	ErrDevWorkflowNotFound        = "workflow instance not found: %s"
	ErrDevUnknownSection          = "unknown section key: %s"
	ErrDevUnknownPhase            = "unknown phase key: %s"
	ErrDevPhaseBlocked            = "phase %s gated by missing %s record"
	ErrDevPrerequisiteCheckFailed = "prerequisite lookup failed for phase %s"

	ErrDevDBFailedToFindDocument   = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument = "mongodb failed to update document"
	ErrDevRedisSetData             = "redis failed to set data"
	ErrDevRedisGetData             = "redis failed to get data for key %s"
	ErrDevRedisDeleteData          = "redis failed to delete data"
	ErrDevRedisIncrement           = "redis failed to increment counter"
	ErrDevMinioFailedToPutObject   = "minio failed to put object into bucket %s"
	ErrDevMinioFailedToPresign     = "minio failed to presign object in bucket %s"
	ErrDevQueueFailedToPublish     = "failed to publish message to queue %s"

	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "credentials do not match any staff user"
	ErrDevUserNotExists             = "staff user does not exist"
	ErrDevUsernameAlreadyExists     = "staff username already exists"
	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevAuthTokenInvalidOrExpired = "session token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevImageValidationFailed     = "image validation failed"
)
