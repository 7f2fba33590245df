package encounters

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/app/models"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/dto/responses"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPhaseGate_Evaluate(t *testing.T) {
	identity := &models.PatientIdentity{PatientID: 9, ClinicRef: "SHF-001", Source: models.IdentitySourceSearched}

	t.Run("Screening Is Always Open", func(t *testing.T) {
		gate := NewPhaseGate(newFakeRegistry(), zap.NewNop())
		status := gate.Evaluate(context.Background(), constvars.PhaseScreening, nil, NewSectionLedger())
		assert.Equal(t, responses.GateAllowed, status.Result)
	})

	t.Run("Local Ledger Entry Opens The Gate Without A Lookup", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.sectionErr = assert.AnError
		ledger := NewSectionLedger()
		ledger.Commit(constvars.SectionRegistration, 9)

		gate := NewPhaseGate(registry, zap.NewNop())
		status := gate.Evaluate(context.Background(), constvars.PhaseFitting, identity, ledger)
		assert.Equal(t, responses.GateAllowed, status.Result)
	})

	t.Run("Missing Prerequisite Blocks", func(t *testing.T) {
		gate := NewPhaseGate(newFakeRegistry(), zap.NewNop())
		status := gate.Evaluate(context.Background(), constvars.PhaseFitting, identity, NewSectionLedger())
		assert.Equal(t, responses.GateBlocked, status.Result)
		assert.NotEmpty(t, status.Reason)
	})

	t.Run("Unresolved Patient Blocks Without A Lookup", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.sectionErr = assert.AnError
		gate := NewPhaseGate(registry, zap.NewNop())
		status := gate.Evaluate(context.Background(), constvars.PhaseAftercare, nil, NewSectionLedger())
		assert.Equal(t, responses.GateBlocked, status.Result)
	})

	t.Run("Registry Record Opens The Gate And Seeds The Ledger", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.sections[constvars.ResourceFittings] = &contracts.RegistryRecord{ID: 55}
		ledger := NewSectionLedger()

		gate := NewPhaseGate(registry, zap.NewNop())
		status := gate.Evaluate(context.Background(), constvars.PhaseAftercare, identity, ledger)
		assert.Equal(t, responses.GateAllowed, status.Result)

		id, ok := ledger.Peek(constvars.SectionDeviceFitting)
		require.True(t, ok)
		assert.Equal(t, int64(55), id)
	})

	t.Run("Lookup Failure Fails Closed With A Distinguishable Reason", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.sectionErr = assert.AnError
		gate := NewPhaseGate(registry, zap.NewNop())
		status := gate.Evaluate(context.Background(), constvars.PhaseFitting, identity, NewSectionLedger())
		assert.Equal(t, responses.GateBlocked, status.Result)
		assert.Contains(t, status.Reason, "could not verify")

		registry.sectionErr = nil
		missing := gate.Evaluate(context.Background(), constvars.PhaseFitting, identity, NewSectionLedger())
		assert.Equal(t, responses.GateBlocked, missing.Result)
		assert.NotEqual(t, missing.Reason, status.Reason)
	})
}
