package contracts

import (
	"audicare-service/internal/pkg/dto/requests"
	"audicare-service/internal/pkg/dto/responses"
	"context"
)

// EncounterUsecase owns the phased-encounter workflow instances: section
// persistence, phase gating, hydration and dirty tracking.
type EncounterUsecase interface {
	OpenWorkflow(ctx context.Context, request *requests.OpenWorkflow) (*responses.WorkflowState, error)
	GetWorkflow(ctx context.Context, workflowID string) (*responses.WorkflowState, error)
	ReassignPatient(ctx context.Context, workflowID, clinicRef string) (*responses.WorkflowState, error)
	UpdateSection(ctx context.Context, workflowID, sectionKey string, fields map[string]interface{}) (*responses.SectionState, error)
	SaveSection(ctx context.Context, workflowID, sectionKey string) (*responses.SectionState, error)
	SubmitPhase(ctx context.Context, workflowID, phaseKey string) (*responses.SubmitOutcome, error)
	CheckGate(ctx context.Context, workflowID, phaseKey string) (*responses.GateStatus, error)
	Dirty(ctx context.Context, workflowID string) (*responses.DirtyState, error)
	RefreshBaseline(ctx context.Context, workflowID string) error
	Hydrate(ctx context.Context, workflowID string) (*responses.HydrationResult, error)
	AttachEarPhoto(ctx context.Context, workflowID string, request *requests.UploadEarPhoto) (*responses.PhotoUpload, error)
}
