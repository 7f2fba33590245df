package encounters

import (
	"audicare-service/internal/app/models"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/formstate"
	"sync"
)

// Workflow is one staff member's in-progress encounter. All mutation happens
// under mu; the generation counter rises every time the workflow is rebound
// to a different patient, so responses from requests launched against the old
// patient can be recognized and dropped.
type Workflow struct {
	mu         sync.Mutex
	ID         string
	Identity   *models.PatientIdentity
	Sections   map[string]*models.Section
	Ledger     *SectionLedger
	Baseline   formstate.Baseline
	generation uint64
}

func NewWorkflow(id string) *Workflow {
	sections := make(map[string]*models.Section, len(constvars.SectionPhase))
	for sectionKey := range constvars.SectionPhase {
		sections[sectionKey] = &models.Section{
			Key:       sectionKey,
			Fields:    formstate.Fields{},
			SaveState: models.SaveStateUnsaved,
		}
	}
	w := &Workflow{
		ID:       id,
		Sections: sections,
		Ledger:   NewSectionLedger(),
	}
	w.Baseline = formstate.Snapshot(w.fieldsBySection())
	return w
}

func (w *Workflow) Lock()   { w.mu.Lock() }
func (w *Workflow) Unlock() { w.mu.Unlock() }

// Generation must be read under lock; compare it after re-acquiring the lock
// to detect a patient switch that happened during an unlocked network call.
func (w *Workflow) Generation() uint64 {
	return w.generation
}

func (w *Workflow) fieldsBySection() map[string]formstate.Fields {
	fields := make(map[string]formstate.Fields, len(w.Sections))
	for sectionKey, section := range w.Sections {
		fields[sectionKey] = section.Fields
	}
	return fields
}

// FieldsBySection returns the live per-section field maps. Callers own the
// lock.
func (w *Workflow) FieldsBySection() map[string]formstate.Fields {
	return w.fieldsBySection()
}

// RebindPatient points the workflow at a different patient and wipes every
// piece of state that belonged to the previous one: correlated record ids,
// the dirty baseline, field values and save states. Results of in-flight
// requests for the old patient die on the generation check.
func (w *Workflow) RebindPatient(identity *models.PatientIdentity) {
	w.Identity = identity
	w.generation++
	w.Ledger.Reset()
	for _, section := range w.Sections {
		section.Fields = formstate.Fields{}
		section.BackendID = nil
		section.SaveState = models.SaveStateUnsaved
		section.LastError = ""
		section.Complete = false
	}
	w.Baseline = formstate.Snapshot(w.fieldsBySection())
}

// RefreshBaseline re-snapshots current form state as the new clean point.
func (w *Workflow) RefreshBaseline() {
	w.Baseline = formstate.Snapshot(w.fieldsBySection())
}

// RefreshSectionBaseline replaces the baseline with a copy whose entry for
// the given section matches its just-saved fields. The old snapshot is never
// written to; other sections keep their existing clean points.
func (w *Workflow) RefreshSectionBaseline(sectionKey string) {
	refreshed := make(formstate.Baseline, len(w.Baseline)+1)
	for key, fields := range w.Baseline {
		refreshed[key] = fields
	}
	refreshed[sectionKey] = formstate.CloneFields(w.Sections[sectionKey].Fields)
	w.Baseline = refreshed
}

// Dirty reports whether any section drifted from the baseline snapshot.
func (w *Workflow) Dirty() bool {
	return formstate.IsDirty(w.fieldsBySection(), w.Baseline)
}

// workflowManager keeps the live workflow instances by id.
type workflowManager struct {
	mu        sync.RWMutex
	workflows map[string]*Workflow
}

func newWorkflowManager() *workflowManager {
	return &workflowManager{workflows: make(map[string]*Workflow)}
}

func (m *workflowManager) Put(w *Workflow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workflows[w.ID] = w
}

func (m *workflowManager) Get(workflowID string) (*Workflow, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.workflows[workflowID]
	return w, ok
}
