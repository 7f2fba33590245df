package routers

import (
	"audicare-service/internal/app/delivery/http/middlewares"
	"audicare-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(r chi.Router, m *middlewares.Middlewares, controller *patients.PatientController) {
	r.Group(func(r chi.Router) {
		r.Use(m.Authenticate)
		r.Post("/lookup", controller.LookupPatient)
	})
}
