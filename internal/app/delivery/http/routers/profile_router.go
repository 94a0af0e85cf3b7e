package routers

import (
	"stackwise-service/internal/app/delivery/http/middlewares"
	"stackwise-service/internal/app/services/core/profiles"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, mutationLimiter *middlewares.RateLimiter, profileController *profiles.ProfileController) {
	router.With(middlewares.Authenticate, mutationLimiter.Limit).Patch("/", profileController.UpdateProfile)
}
