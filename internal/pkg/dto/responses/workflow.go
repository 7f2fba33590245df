package responses

import "audicare-service/internal/pkg/formstate"

// GateResult is the tri-state outcome of a prerequisite-phase check. Both
// pending and blocked disable mutating actions on the gated phase; only
// allowed enables them.
type GateResult string

const (
	GateAllowed GateResult = "allowed"
	GateBlocked GateResult = "blocked"
	GatePending GateResult = "pending"
)

type GateStatus struct {
	Phase  string     `json:"phase"`
	Result GateResult `json:"result"`
	Reason string     `json:"reason,omitempty"`
}

type SectionState struct {
	SectionKey string           `json:"section_key"`
	Phase      string           `json:"phase"`
	BackendID  *int64           `json:"backend_id,omitempty"`
	Fields     formstate.Fields `json:"fields"`
	SaveState  string           `json:"save_state"`
	LastError  string           `json:"last_error,omitempty"`
	Complete   bool             `json:"complete"`
}

type PhaseState struct {
	Phase          string     `json:"phase"`
	CompletedCount int        `json:"completed_count"`
	TotalCount     int        `json:"total_count"`
	Gate           GateStatus `json:"gate"`
}

type WorkflowState struct {
	WorkflowID   string         `json:"workflow_id"`
	PatientID    int64          `json:"patient_id,omitempty"`
	ClinicRef    string         `json:"clinic_ref,omitempty"`
	PatientFound bool           `json:"patient_found"`
	Sections     []SectionState `json:"sections"`
	Phases       []PhaseState   `json:"phases"`
	Dirty        bool           `json:"dirty"`
}

type SectionOutcome struct {
	SectionKey string `json:"section_key"`
	Success    bool   `json:"success"`
	BackendID  *int64 `json:"backend_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

type SubmitOutcome struct {
	Phase        string           `json:"phase"`
	AllSucceeded bool             `json:"all_succeeded"`
	Sections     []SectionOutcome `json:"sections"`
}

type DirtyState struct {
	Dirty bool `json:"dirty"`
}

type HydrationResult struct {
	PatientID       int64            `json:"patient_id"`
	CompletionFlags map[string]bool  `json:"completion_flags"`
	AllComplete     bool             `json:"all_complete"`
	SectionIDs      map[string]int64 `json:"section_ids"`
}

type PhotoUpload struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}
