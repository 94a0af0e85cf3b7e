package requests

// CreateStack mirrors the add-to-stack form payload. Dosage fields arrive as
// either strings or numbers depending on the client; they are coerced later,
// with unparseable input defaulting to zero.
type CreateStack struct {
	UserEmail    string      `json:"user_email" validate:"required,email"`
	ResourceID   string      `json:"id" validate:"required"`
	DosageValue  interface{} `json:"dosageValue"`
	DosageUnit   string      `json:"dosageUnit"`
	DosesPerWeek interface{} `json:"dosesPerWeek"`
}

type UpdateStack struct {
	ID           string      `json:"id" validate:"required"`
	DosageValue  interface{} `json:"dosageValue"`
	DosageUnit   string      `json:"dosageUnit"`
	DosesPerWeek interface{} `json:"dosesPerWeek"`
}
