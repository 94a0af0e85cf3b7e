package responses

import "time"

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	FhirPatientID string    `json:"fhir_patient_id"`
	Roles         []string  `json:"roles"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserDirectory is the wire envelope of the directory lookup endpoint;
// consumers check success and index into users directly.
type UserDirectory struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}
