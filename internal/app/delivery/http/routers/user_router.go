package routers

import (
	"stackwise-service/internal/app/delivery/http/middlewares"
	"stackwise-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.APIKeyAuth).Get("/", userController.ListUsers)
}
