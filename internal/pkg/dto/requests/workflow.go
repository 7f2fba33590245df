package requests

type OpenWorkflow struct {
	// ClinicRef is optional; when present the workflow resolves the patient
	// and hydrates before the first response.
	ClinicRef string `json:"clinic_ref" validate:"omitempty,clinic_ref"`
}

type UpdateSection struct {
	Fields map[string]interface{} `json:"fields" validate:"required"`
}

type UploadEarPhoto struct {
	Side        string `json:"side" validate:"required,oneof=left right"`
	Image       string `json:"image" validate:"required,base64"`
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/png"`
}
