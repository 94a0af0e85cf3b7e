package responses

import "stackwise-service/internal/pkg/fhir_dto"

type MedicationList struct {
	Resources []fhir_dto.Medication `json:"resources"`
	Count     int                   `json:"count"`
}
