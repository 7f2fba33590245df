package encounters

import (
	"audicare-service/internal/pkg/constvars"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionLedger_CreateThenAlwaysUpdate(t *testing.T) {
	ledger := NewSectionLedger()

	plan := ledger.Plan(constvars.SectionEarScreening)
	assert.Equal(t, PersistCreate, plan.Mode)

	require.True(t, ledger.Commit(constvars.SectionEarScreening, 41))

	for i := 0; i < 3; i++ {
		plan = ledger.Plan(constvars.SectionEarScreening)
		assert.Equal(t, PersistUpdate, plan.Mode)
		assert.Equal(t, int64(41), plan.BackendID)
	}
}

func TestSectionLedger_FailedCreateRetriesAsCreate(t *testing.T) {
	ledger := NewSectionLedger()

	// A create that failed never commits, so the retry is another create.
	plan := ledger.Plan(constvars.SectionDeviceFitting)
	assert.Equal(t, PersistCreate, plan.Mode)

	plan = ledger.Plan(constvars.SectionDeviceFitting)
	assert.Equal(t, PersistCreate, plan.Mode)
}

func TestSectionLedger_FirstCommitWins(t *testing.T) {
	ledger := NewSectionLedger()

	require.True(t, ledger.Commit(constvars.SectionFinalQC, 7))
	assert.False(t, ledger.Commit(constvars.SectionFinalQC, 99))

	id, ok := ledger.Peek(constvars.SectionFinalQC)
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestSectionLedger_SeedNeverOverwrites(t *testing.T) {
	ledger := NewSectionLedger()
	require.True(t, ledger.Commit(constvars.SectionRegistration, 9))

	ledger.Seed(map[string]int64{
		constvars.SectionRegistration: 100,
		constvars.SectionEarScreening: 21,
	})

	id, _ := ledger.Peek(constvars.SectionRegistration)
	assert.Equal(t, int64(9), id)
	id, _ = ledger.Peek(constvars.SectionEarScreening)
	assert.Equal(t, int64(21), id)
}

func TestSectionLedger_ResetDropsCorrelations(t *testing.T) {
	ledger := NewSectionLedger()
	require.True(t, ledger.Commit(constvars.SectionRegistration, 9))

	ledger.Reset()

	plan := ledger.Plan(constvars.SectionRegistration)
	assert.Equal(t, PersistCreate, plan.Mode)
}

func TestSectionLedger_ConcurrentCommitsRecordOneID(t *testing.T) {
	ledger := NewSectionLedger()

	var wg sync.WaitGroup
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			ledger.Commit(constvars.SectionHearingScreening, id)
		}(int64(i))
	}
	wg.Wait()

	id, ok := ledger.Peek(constvars.SectionHearingScreening)
	require.True(t, ok)
	assert.True(t, id >= 1 && id <= 16)
	assert.Equal(t, PersistUpdate, ledger.Plan(constvars.SectionHearingScreening).Mode)
}
