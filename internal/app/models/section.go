package models

import "audicare-service/internal/pkg/formstate"

// SaveState tracks the persistence lifecycle of one section.
type SaveState string

const (
	SaveStateUnsaved SaveState = "unsaved"
	SaveStateSaving  SaveState = "saving"
	SaveStateSaved   SaveState = "saved"
	SaveStateFailed  SaveState = "failed"
)

// Section is the unit of independent persistence within a phase. BackendID
// stays nil until the first successful create; once set it never changes for
// the lifetime of the encounter.
type Section struct {
	Key       string           `json:"section_key"`
	BackendID *int64           `json:"backend_id,omitempty"`
	Fields    formstate.Fields `json:"fields"`
	SaveState SaveState        `json:"save_state"`
	LastError string           `json:"last_error,omitempty"`
	Complete  bool             `json:"complete"`
}
