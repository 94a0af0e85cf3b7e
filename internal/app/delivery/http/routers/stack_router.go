package routers

import (
	"stackwise-service/internal/app/delivery/http/middlewares"
	"stackwise-service/internal/app/services/core/stacks"

	"github.com/go-chi/chi/v5"
)

func attachStackRoutes(router chi.Router, middlewares *middlewares.Middlewares, mutationLimiter *middlewares.RateLimiter, stackController *stacks.StackController) {
	router.With(middlewares.Authenticate).Get("/", stackController.ListStack)
	router.With(middlewares.Authenticate, mutationLimiter.Limit).Post("/", stackController.CreateStatement)
	router.With(middlewares.Authenticate, mutationLimiter.Limit).Patch("/", stackController.PatchStatement)
}
