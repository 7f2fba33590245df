package encounters

import (
	"audicare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_RefreshSectionBaseline(t *testing.T) {
	t.Run("Saved Section Becomes Clean Without Touching The Old Snapshot", func(t *testing.T) {
		workflow := NewWorkflow("wf-1")
		previous := workflow.Baseline

		workflow.Sections[constvars.SectionRegistration].Fields["firstName"] = "Amina"
		require.True(t, workflow.Dirty())

		workflow.RefreshSectionBaseline(constvars.SectionRegistration)
		assert.False(t, workflow.Dirty())

		// The snapshot is replaced wholesale; the one captured before the
		// refresh still reflects the pre-save state.
		assert.Empty(t, previous[constvars.SectionRegistration]["firstName"])
		assert.Equal(t, "Amina", workflow.Baseline[constvars.SectionRegistration]["firstName"])
	})

	t.Run("Other Sections Keep Their Clean Points", func(t *testing.T) {
		workflow := NewWorkflow("wf-2")
		workflow.Sections[constvars.SectionEarScreening].Fields["otoscopyNotes"] = "wax buildup"
		workflow.Sections[constvars.SectionRegistration].Fields["firstName"] = "Amina"

		workflow.RefreshSectionBaseline(constvars.SectionRegistration)

		// The ear screening edit was never saved, so it still counts as an
		// unsaved change.
		assert.True(t, workflow.Dirty())
	})
}
