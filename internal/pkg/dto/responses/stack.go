package responses

import (
	"time"

	"stackwise-service/internal/pkg/fhir_dto"
)

type StackItem struct {
	StatementID    string    `json:"statement_id"`
	Reference      string    `json:"reference"`
	MedicationName string    `json:"medication_name"`
	Frequency      int       `json:"frequency"`
	PeriodUnit     string    `json:"period_unit"`
	DoseValue      float64   `json:"dose_value"`
	DoseUnit       string    `json:"dose_unit"`
	Status         string    `json:"status"`
	LastUpdated    time.Time `json:"last_updated"`
}

type Stack struct {
	Items []StackItem `json:"items"`
	Count int         `json:"count"`
}

type CreatedStatement struct {
	Resource *fhir_dto.MedicationStatement `json:"resource"`
}
