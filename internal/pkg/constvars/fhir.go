package constvars

const (
	ResourcePatient             = "Patient"
	ResourceMedication          = "Medication"
	ResourceMedicationStatement = "MedicationStatement"
)

const (
	FhirMedicationStatusActive          = "active"
	FhirMedicationStatementStatusActive = "active"
)

const (
	FhirDosePeriodUnitWeek   = "wk"
	FhirUnitsOfMeasureSystem = "http://unitsofmeasure.org"
	FhirDefaultDoseUnit      = "units"
	FhirDefaultDoseCode      = "g"
)

const (
	// FhirListPageSize caps list reads against the FHIR store; the
	// dashboard renders everything on one page.
	FhirListPageSize = 100
)

const (
	// UnknownMedicationDisplayName is the sentinel shown when a
	// medication reference cannot be resolved.
	UnknownMedicationDisplayName = "Unknown Medication"
)

// JSON-Patch targets for dosage updates. These are the only two paths the
// service ever rewrites on a MedicationStatement after creation.
const (
	PatchOpReplace           = "replace"
	PatchPathDosageRepeat    = "/dosage/0/timing/repeat"
	PatchPathDoseQuantity    = "/dosage/0/doseAndRate/0/doseQuantity"
	PatchOperationsPerDosage = 2
)
