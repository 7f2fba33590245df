package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "requestID"
	CONTEXT_SESSION_KEY    ContextKey = "sessionData"
	CONTEXT_USER_ID_KEY    ContextKey = "userID"
	CONTEXT_TOKEN_KEY      ContextKey = "bearerToken"
)

const (
	RedisSessionKeyPrefix   = "session:"
	RedisHydrationKeyPrefix = "hydration:"

	StaffUserCollection = "staff_users"
)

const (
	RoleClinician   = "clinician"
	RoleAudiologist = "audiologist"
	RoleCoordinator = "coordinator"
)
