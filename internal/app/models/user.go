package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

type User struct {
	ID             string   `bson:"_id,omitempty"`
	Email          string   `bson:"email"`
	Username       string   `bson:"username"`
	IdentityUserID string   `bson:"identityUserId,omitempty"`
	FhirPatientID  string   `bson:"fhirPatientId,omitempty"`
	Roles          []string `bson:"roles,omitempty"`
	TimeModel      `bson:",inline"`
}
