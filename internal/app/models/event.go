package models

import "time"

// StackEvent is published to the activity queue whenever a statement is
// created or its dosage patched.
type StackEvent struct {
	Type                string    `json:"type"`
	StatementID         string    `json:"statement_id"`
	PatientID           string    `json:"patient_id,omitempty"`
	MedicationReference string    `json:"medication_reference,omitempty"`
	OccurredAt          time.Time `json:"occurred_at"`
}
