package utils

import (
	"audicare-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("clinic_ref", validateClinicRef)
	validate.RegisterValidation("section_key", validateSectionKey)
	validate.RegisterValidation("phase_key", validatePhaseKey)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateClinicRef(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexClinicRef).MatchString(fl.Field().String())
}

func validateSectionKey(fl validator.FieldLevel) bool {
	_, ok := constvars.SectionPhase[fl.Field().String()]
	return ok
}

func validatePhaseKey(fl validator.FieldLevel) bool {
	_, ok := constvars.PhaseSections[fl.Field().String()]
	return ok
}
