package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"alphanum":    "must contain only alphanumeric characters",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"numeric":     "must be a number",
	"oneof":       "must be one of [%s]",
	"base64":      "must be a valid base64 string",
	"uuid":        "must be a valid UUID",
	"clinic_ref":  "must be a clinic reference like SHF-001",
	"section_key": "must be a known encounter section",
	"phase_key":   "must be a known encounter phase",
	"password":    "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
