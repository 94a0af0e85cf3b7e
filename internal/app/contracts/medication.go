package contracts

import (
	"context"
	"stackwise-service/internal/pkg/fhir_dto"
)

type MedicationFhirClient interface {
	CreateMedication(ctx context.Context, request *fhir_dto.Medication) (*fhir_dto.Medication, error)
	FindAllMedications(ctx context.Context) ([]fhir_dto.Medication, error)
	FindMedicationByReference(ctx context.Context, reference string) (*fhir_dto.Medication, error)
	DeleteMedication(ctx context.Context, medicationID string) error
}
