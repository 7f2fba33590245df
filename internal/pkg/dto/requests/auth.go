package requests

type RegisterStaff struct {
	Username   string `json:"username" validate:"required,alphanum,min=4,max=32"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,password"`
	Role       string `json:"role" validate:"required,oneof=clinician audiologist coordinator"`
	ClinicSite string `json:"clinic_site" validate:"omitempty,max=64"`
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
