package encounters

import "sync"

// PersistMode says whether the next save of a section must create a new
// registry record or update the one already correlated.
type PersistMode string

const (
	PersistCreate PersistMode = "create"
	PersistUpdate PersistMode = "update"
)

// PersistPlan is the correlator's verdict for one save attempt.
type PersistPlan struct {
	Mode      PersistMode
	BackendID int64
}

// SectionLedger correlates section keys with the backend record identifiers
// the registry assigned to them. An identifier is recorded exactly once, at
// the first successful create; every later save of that section is an update
// against the same record. A failed create records nothing, so the retry is
// another create; a failed update keeps the identifier, so the retry is never
// demoted to a create.
type SectionLedger struct {
	mu  sync.Mutex
	ids map[string]int64
}

func NewSectionLedger() *SectionLedger {
	return &SectionLedger{ids: make(map[string]int64)}
}

// Plan returns what the next save of sectionKey must do.
func (l *SectionLedger) Plan(sectionKey string) PersistPlan {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id, ok := l.ids[sectionKey]; ok {
		return PersistPlan{Mode: PersistUpdate, BackendID: id}
	}
	return PersistPlan{Mode: PersistCreate}
}

// Commit records the identifier a successful create returned. The first
// commit wins; a second commit for the same section is ignored and reported.
func (l *SectionLedger) Commit(sectionKey string, backendID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.ids[sectionKey]; ok {
		return false
	}
	l.ids[sectionKey] = backendID
	return true
}

// Peek reports the correlated identifier without planning a save.
func (l *SectionLedger) Peek(sectionKey string) (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id, ok := l.ids[sectionKey]
	return id, ok
}

// Seed loads identifiers recovered from the registry, typically during
// hydration. Existing entries are never overwritten.
func (l *SectionLedger) Seed(ids map[string]int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for sectionKey, id := range ids {
		if _, ok := l.ids[sectionKey]; !ok {
			l.ids[sectionKey] = id
		}
	}
}

// Reset drops every correlation. Called when the workflow switches to a
// different patient, so stale identifiers can never leak across patients.
func (l *SectionLedger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ids = make(map[string]int64)
}
