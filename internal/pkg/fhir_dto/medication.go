package fhir_dto

type Medication struct {
	ResourceType string           `json:"resourceType,omitempty"`
	ID           string           `json:"id,omitempty"`
	Meta         *Meta            `json:"meta,omitempty"`
	Code         *CodeableConcept `json:"code,omitempty"`
	Status       string           `json:"status,omitempty"`
	Manufacturer *Reference       `json:"manufacturer,omitempty"`
	Form         *CodeableConcept `json:"form,omitempty"`
}

// DisplayName returns the human-readable name carried in code.text, or empty
// when the resource carries none.
func (m *Medication) DisplayName() string {
	if m == nil || m.Code == nil {
		return ""
	}
	return m.Code.Text
}
