package contracts

import (
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
)

// FailureClass buckets registry failures by the next action the UI offers:
// re-enter (not found), fix the payload (bad request), or retry (other).
type FailureClass string

const (
	FailureNotFound   FailureClass = "not-found"
	FailureBadRequest FailureClass = "bad-request"
	FailureOther      FailureClass = "other"
)

// FieldError is a structured per-field message from the registry.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegistryFailure is the typed failure the registry transport yields.
type RegistryFailure struct {
	Class   FailureClass `json:"class"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (f *RegistryFailure) Error() string {
	return fmt.Sprintf("registry failure (%s): %s", f.Class, f.Message)
}

// SectionMessage picks the message to attach to a failed section, preferring
// the first structured field message over the flat message, and falling back
// to a generic one so no failure surfaces blank.
func (f *RegistryFailure) SectionMessage() string {
	if len(f.Fields) > 0 && f.Fields[0].Message != "" {
		if f.Fields[0].Field != "" {
			return fmt.Sprintf("%s: %s", f.Fields[0].Field, f.Fields[0].Message)
		}
		return f.Fields[0].Message
	}
	if f.Message != "" {
		return f.Message
	}
	return constvars.ErrClientSectionSaveFailed
}

// FailureMessage extracts a section-scoped message from any error the
// registry path can produce.
func FailureMessage(err error) string {
	var failure *RegistryFailure
	if errors.As(err, &failure) {
		return failure.SectionMessage()
	}
	var custom *exceptions.CustomError
	if errors.As(err, &custom) {
		return custom.ClientMessage
	}
	return constvars.ErrClientSectionSaveFailed
}

// RegistryRecord is one persisted section record as the registry returns it.
type RegistryRecord struct {
	ID     int64
	Fields map[string]interface{}
}

// RegistryClient is the transport to the remote clinic registry. All
// failures coming back from the registry itself are *RegistryFailure;
// request-building and decoding problems are exceptions.CustomError.
type RegistryClient interface {
	CreateRecord(ctx context.Context, resourcePath string, payload map[string]interface{}) (int64, error)
	UpdateRecord(ctx context.Context, resourcePath string, recordID int64, payload map[string]interface{}) error
	SearchPatientByClinicRef(ctx context.Context, clinicRef string) (*RegistryRecord, error)
	FindSectionByPatient(ctx context.Context, resourcePath string, patientID int64) (*RegistryRecord, error)
	FetchPatientBundle(ctx context.Context, patientID int64) (map[string]*RegistryRecord, error)
}
