package constvars

const (
	ResponseUnknown = "unknown"

	StackCreatedSuccessMessage = "supplement added to stack successfully"
	StackUpdatedSuccessMessage = "dosage updated successfully"
	StackFetchSuccessMessage   = "stack fetched successfully"

	MedicationListSuccessMessage    = "medications fetched successfully"
	MedicationGetSuccessMessage     = "medication fetched successfully"
	MedicationCreatedSuccessMessage = "medication created successfully"
	MedicationDeletedSuccessMessage = "medication deleted successfully"

	ProfileUpdatedSuccessMessage = "profile updated successfully"

	UserListSuccessMessage = "users fetched successfully"
)
