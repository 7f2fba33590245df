package routers

import (
	"audicare-service/internal/app/delivery/http/middlewares"
	"audicare-service/internal/app/services/encounters"

	"github.com/go-chi/chi/v5"
)

func attachWorkflowRoutes(r chi.Router, m *middlewares.Middlewares, controller *encounters.EncounterController) {
	r.Group(func(r chi.Router) {
		r.Use(m.Authenticate)

		r.Post("/", controller.OpenWorkflow)
		r.Get("/{workflowID}", controller.GetWorkflow)
		r.Put("/{workflowID}/patient", controller.ReassignPatient)

		r.Put("/{workflowID}/sections/{sectionKey}", controller.UpdateSection)
		r.Post("/{workflowID}/sections/{sectionKey}/save", controller.SaveSection)

		r.Post("/{workflowID}/phases/{phaseKey}/submit", controller.SubmitPhase)
		r.Get("/{workflowID}/phases/{phaseKey}/gate", controller.CheckGate)

		r.Get("/{workflowID}/dirty", controller.Dirty)
		r.Post("/{workflowID}/baseline/refresh", controller.RefreshBaseline)
		r.Post("/{workflowID}/hydrate", controller.Hydrate)
		r.Post("/{workflowID}/photos", controller.UploadEarPhoto)
	})
}
