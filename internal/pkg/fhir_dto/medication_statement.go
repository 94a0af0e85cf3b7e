package fhir_dto

type MedicationStatement struct {
	ResourceType        string    `json:"resourceType,omitempty"`
	ID                  string    `json:"id,omitempty"`
	Meta                *Meta     `json:"meta,omitempty"`
	Status              string    `json:"status,omitempty"`
	Subject             Reference `json:"subject"`
	MedicationReference Reference `json:"medicationReference"`
	Dosage              []Dosage  `json:"dosage,omitempty"`
}

type Dosage struct {
	Text        string        `json:"text,omitempty"`
	Timing      *Timing       `json:"timing,omitempty"`
	DoseAndRate []DoseAndRate `json:"doseAndRate,omitempty"`
}

type Timing struct {
	Repeat TimingRepeat `json:"repeat"`
}

type TimingRepeat struct {
	Frequency  int    `json:"frequency"`
	Period     int    `json:"period"`
	PeriodUnit string `json:"periodUnit"`
}

type DoseAndRate struct {
	DoseQuantity Quantity `json:"doseQuantity"`
}
