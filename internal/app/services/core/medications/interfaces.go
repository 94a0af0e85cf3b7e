package medications

import (
	"context"
	"stackwise-service/internal/pkg/dto/requests"
	"stackwise-service/internal/pkg/dto/responses"
	"stackwise-service/internal/pkg/fhir_dto"
)

type MedicationUsecase interface {
	ListMedications(ctx context.Context) (*responses.MedicationList, error)
	GetMedicationByID(ctx context.Context, medicationID string) (*fhir_dto.Medication, error)
	CreateMedication(ctx context.Context, request *requests.CreateMedication) (*fhir_dto.Medication, error)
	DeleteMedication(ctx context.Context, medicationID string) error
}
