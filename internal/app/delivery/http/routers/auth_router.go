package routers

import (
	"audicare-service/internal/app/delivery/http/middlewares"
	"audicare-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(r chi.Router, m *middlewares.Middlewares, controller *auth.AuthController) {
	r.Post("/register", controller.RegisterStaff)
	r.Post("/login", controller.Login)

	r.Group(func(r chi.Router) {
		r.Use(m.Authenticate)
		r.Post("/logout", controller.Logout)
	})
}
