package patients

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/app/models"
	"audicare-service/internal/pkg/constvars"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	RegistryClient contracts.RegistryClient
	Log            *zap.Logger
}

func NewPatientUsecase(registryClient contracts.RegistryClient, logger *zap.Logger) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			RegistryClient: registryClient,
			Log:            logger,
		}
	})
	return patientUsecaseInstance
}

// LookupByClinicRef searches the registry for a patient by the human-entered
// clinic reference. A miss is not an error: it yields an unresolved identity
// so the caller can fall back to registering the patient.
func (uc *patientUsecase) LookupByClinicRef(ctx context.Context, clinicRef string) (*models.PatientIdentity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.LookupByClinicRef called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicRefKey, clinicRef),
	)

	record, err := uc.RegistryClient.SearchPatientByClinicRef(ctx, clinicRef)
	if err != nil {
		return nil, err
	}

	identity := &models.PatientIdentity{
		ClinicRef: clinicRef,
		Source:    models.IdentitySourceSearched,
	}
	if record != nil {
		identity.PatientID = record.ID
	}

	uc.Log.Info("patientUsecase.LookupByClinicRef succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicRefKey, clinicRef),
		zap.Bool(constvars.LoggingSuccessKey, identity.Resolved()),
	)
	return identity, nil
}
