package routers

import (
	"fmt"
	"stackwise-service/internal/app/config"
	"stackwise-service/internal/app/delivery/http/middlewares"
	"stackwise-service/internal/app/services/core/medications"
	"stackwise-service/internal/app/services/core/profiles"
	"stackwise-service/internal/app/services/core/stacks"
	"stackwise-service/internal/app/services/core/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	stackController *stacks.StackController,
	medicationController *medications.MedicationController,
	profileController *profiles.ProfileController,
	userController *users.UserController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	mutationLimiter := NewMutationLimiter(internalConfig)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/stacks", func(r chi.Router) {
				attachStackRoutes(r, middlewares, mutationLimiter, stackController)
			})

			r.Route("/medications", func(r chi.Router) {
				attachMedicationRoutes(r, middlewares, mutationLimiter, medicationController)
			})

			r.Route("/profile", func(r chi.Router) {
				attachProfileRoutes(r, middlewares, mutationLimiter, profileController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})
		})
	})
}

// NewMutationLimiter builds the shared limiter for write endpoints; reads go
// through the global IP limiter only.
func NewMutationLimiter(internalConfig *config.InternalConfig) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(
		internalConfig.App.MutationRateLimitPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.MutationBlockTimeInMinutes)*time.Minute,
	)
}
