package contracts

import (
	"audicare-service/internal/app/models"
	"context"
)

type PatientUsecase interface {
	LookupByClinicRef(ctx context.Context, clinicRef string) (*models.PatientIdentity, error)
}
