package utils

import (
	"fmt"
	"stackwise-service/internal/pkg/constvars"
	"stackwise-service/internal/pkg/fhir_dto"
)

// BuildMedicationStatementResource maps the add-to-stack form into a FHIR
// MedicationStatement. Dosage inputs coerce to 0 when unparseable; callers
// are expected to validate upstream if stricter behavior is wanted.
func BuildMedicationStatementResource(statementID, patientID, medicationID string, dosageValue interface{}, dosageUnit string, dosesPerWeek interface{}) *fhir_dto.MedicationStatement {
	doseValue := CoerceFloat(dosageValue)
	frequency := CoerceInt(dosesPerWeek)

	unit := dosageUnit
	if unit == "" {
		unit = constvars.FhirDefaultDoseUnit
	}
	code := dosageUnit
	if code == "" {
		code = constvars.FhirDefaultDoseCode
	}

	return &fhir_dto.MedicationStatement{
		ResourceType: constvars.ResourceMedicationStatement,
		ID:           statementID,
		Status:       constvars.FhirMedicationStatementStatusActive,
		Subject: fhir_dto.Reference{
			Reference: constvars.ResourcePatient + "/" + patientID,
		},
		MedicationReference: fhir_dto.Reference{
			Reference: constvars.ResourceMedication + "/" + medicationID,
		},
		Dosage: []fhir_dto.Dosage{
			{
				Text: fmt.Sprintf("%g %s, %d per week", doseValue, unit, frequency),
				Timing: &fhir_dto.Timing{
					Repeat: fhir_dto.TimingRepeat{
						Frequency:  frequency,
						Period:     1,
						PeriodUnit: constvars.FhirDosePeriodUnitWeek,
					},
				},
				DoseAndRate: []fhir_dto.DoseAndRate{
					{
						DoseQuantity: fhir_dto.Quantity{
							Value:  doseValue,
							Unit:   unit,
							System: constvars.FhirUnitsOfMeasureSystem,
							Code:   code,
						},
					},
				},
			},
		},
	}
}

// BuildDosagePatchOperations builds the fixed two-operation JSON-Patch for a
// dosage update. The resource's shape is frozen after creation; only these
// two paths are ever rewritten, with no version precondition (last write
// wins).
func BuildDosagePatchOperations(dosageValue interface{}, dosageUnit string, dosesPerWeek interface{}) []fhir_dto.PatchOperation {
	doseValue := CoerceFloat(dosageValue)
	frequency := CoerceInt(dosesPerWeek)

	unit := dosageUnit
	if unit == "" {
		unit = constvars.FhirDefaultDoseUnit
	}
	code := dosageUnit
	if code == "" {
		code = constvars.FhirDefaultDoseCode
	}

	return []fhir_dto.PatchOperation{
		{
			Op:   constvars.PatchOpReplace,
			Path: constvars.PatchPathDosageRepeat,
			Value: fhir_dto.TimingRepeat{
				Frequency:  frequency,
				Period:     1,
				PeriodUnit: constvars.FhirDosePeriodUnitWeek,
			},
		},
		{
			Op:   constvars.PatchOpReplace,
			Path: constvars.PatchPathDoseQuantity,
			Value: fhir_dto.Quantity{
				Value:  doseValue,
				Unit:   unit,
				System: constvars.FhirUnitsOfMeasureSystem,
				Code:   code,
			},
		},
	}
}

func BuildMedicationResource(name string) *fhir_dto.Medication {
	return &fhir_dto.Medication{
		ResourceType: constvars.ResourceMedication,
		Status:       constvars.FhirMedicationStatusActive,
		Code: &fhir_dto.CodeableConcept{
			Text: name,
		},
	}
}
