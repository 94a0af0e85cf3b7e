package routers

import (
	"stackwise-service/internal/app/delivery/http/middlewares"
	"stackwise-service/internal/app/services/core/medications"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, mutationLimiter *middlewares.RateLimiter, medicationController *medications.MedicationController) {
	router.Get("/", medicationController.ListMedications)
	router.Get("/{medicationID}", medicationController.GetMedicationByID)
	router.With(middlewares.Authenticate, mutationLimiter.Limit).Post("/", medicationController.CreateMedication)
	router.With(middlewares.APIKeyAuth, mutationLimiter.Limit).Delete("/{medicationID}", medicationController.DeleteMedication)
}
