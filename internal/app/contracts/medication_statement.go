package contracts

import (
	"context"
	"stackwise-service/internal/pkg/fhir_dto"
)

type MedicationStatementFhirClient interface {
	CreateMedicationStatement(ctx context.Context, request *fhir_dto.MedicationStatement) (*fhir_dto.MedicationStatement, error)
	PatchMedicationStatement(ctx context.Context, statementID string, operations []fhir_dto.PatchOperation) (*fhir_dto.MedicationStatement, error)
	FindAllMedicationStatements(ctx context.Context) ([]fhir_dto.MedicationStatement, error)
}
