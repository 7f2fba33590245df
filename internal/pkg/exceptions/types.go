package exceptions

import (
	"audicare-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, FormatFirstValidationError(err), FormatAllValidationErrors(err))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Registry transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrDecodeEnvelope = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, constvars.ErrDevDecodeEnvelope)
	}
	ErrRegistryNotFound = func(resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevRegistryNotFound, resource))
	}
	ErrRegistryRejected = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSectionSaveFailed, fmt.Sprintf(constvars.ErrDevRegistryRejected, resource))
	}
	ErrRegistryUnavailable = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistryUnavailable, fmt.Sprintf(constvars.ErrDevRegistryUnavailable, resource))
	}
	ErrRegistryOverQuota = func() *CustomError {
		return WrapWithoutError(constvars.StatusTooManyRequests, constvars.ErrClientRegistryOverQuota, constvars.ErrDevRegistryOverQuota)
	}

	// Workflow
	ErrPatientIdentityMissing = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientPatientIdentityMissing, constvars.ErrDevPatientIdentityMissing)
	}
	ErrWorkflowNotFound = func(workflowID string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientWorkflowNotFound, fmt.Sprintf(constvars.ErrDevWorkflowNotFound, workflowID))
	}
	ErrUnknownSection = func(sectionKey string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientUnknownSection, fmt.Sprintf(constvars.ErrDevUnknownSection, sectionKey))
	}
	ErrUnknownPhase = func(phaseKey string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientUnknownPhase, fmt.Sprintf(constvars.ErrDevUnknownPhase, phaseKey))
	}
	ErrPhaseBlocked = func(phaseKey, prerequisiteSection string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientPhaseBlocked, fmt.Sprintf(constvars.ErrDevPhaseBlocked, phaseKey, prerequisiteSection))
	}
	ErrPhasePending = func(phaseKey string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientPhasePending, fmt.Sprintf(constvars.ErrDevPrerequisiteCheckFailed, phaseKey))
	}
	ErrPrerequisiteCheckFailed = func(err error, phaseKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPrerequisiteCheckDown, fmt.Sprintf(constvars.ErrDevPrerequisiteCheckFailed, phaseKey))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetData, redisKey))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrement)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPutObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPresign, bucketName))
	}

	// Messaging
	ErrQueuePublish = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevQueueFailedToPublish, queueName))
	}

	// Auth
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrUserNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevUserNotExists)
	}
	ErrUsernameAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUsernameAlreadyExists, constvars.ErrDevUsernameAlreadyExists)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	// Uploads
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrImageTooLarge = func(maxMB int64) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientImageTooLarge, fmt.Sprintf("image exceeds %d MB", maxMB))
	}
)
