package encounters

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/app/models"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/dto/responses"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// PhaseGate decides whether a phase is actionable. The screening phase is
// always open. A later phase opens only once its prerequisite section has a
// persisted record, checked locally first and then against the registry. A
// failed registry check yields blocked, never allowed: the gate fails closed.
type PhaseGate struct {
	Registry contracts.RegistryClient
	Log      *zap.Logger
}

func NewPhaseGate(registry contracts.RegistryClient, logger *zap.Logger) *PhaseGate {
	return &PhaseGate{Registry: registry, Log: logger}
}

// Evaluate runs the gate for phaseKey. When the registry supplies the
// prerequisite record, its identifier is seeded into the ledger so the next
// save of that section is an update.
func (g *PhaseGate) Evaluate(ctx context.Context, phaseKey string, identity *models.PatientIdentity, ledger *SectionLedger) *responses.GateStatus {
	prerequisite, gated := constvars.PhasePrerequisiteSection[phaseKey]
	if !gated {
		return &responses.GateStatus{Phase: phaseKey, Result: responses.GateAllowed}
	}

	if _, ok := ledger.Peek(prerequisite); ok {
		return &responses.GateStatus{Phase: phaseKey, Result: responses.GateAllowed}
	}

	if !identity.Resolved() {
		return &responses.GateStatus{
			Phase:  phaseKey,
			Result: responses.GateBlocked,
			Reason: fmt.Sprintf("no %s record exists yet", prerequisite),
		}
	}

	record, err := g.Registry.FindSectionByPatient(ctx, constvars.SectionResourcePaths[prerequisite], identity.PatientID)
	if err != nil {
		g.Log.Warn("phaseGate.Evaluate prerequisite check failed",
			zap.String(constvars.LoggingPhaseKey, phaseKey),
			zap.String(constvars.LoggingSectionKey, prerequisite),
			zap.Error(err),
		)
		// Blocked for a different reason than a missing record: the caller
		// must be able to tell "retry the check" apart from "complete the
		// prerequisite first".
		return &responses.GateStatus{
			Phase:  phaseKey,
			Result: responses.GateBlocked,
			Reason: fmt.Sprintf("could not verify the %s prerequisite, try again", prerequisite),
		}
	}

	if record == nil {
		return &responses.GateStatus{
			Phase:  phaseKey,
			Result: responses.GateBlocked,
			Reason: fmt.Sprintf("no %s record exists yet", prerequisite),
		}
	}

	ledger.Commit(prerequisite, record.ID)
	return &responses.GateStatus{Phase: phaseKey, Result: responses.GateAllowed}
}
