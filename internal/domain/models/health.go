package models

// Health records are structurally parallel CRUD entities: each is stamped
// with the farm, the animal, and whoever administered it. Date fields are
// RFC3339 strings as sent by the upstream API.

// Vaccination captures one vaccine administration.
type Vaccination struct {
	ID                 string  `json:"id"`
	FarmID             string  `json:"farmId"`
	LivestockID        string  `json:"livestockId"`
	VaccinationAgainst string  `json:"vaccinationAgainst"`
	DrugAdministered   string  `json:"drugAdministered"`
	Dosage             float64 `json:"dosage"`
	DateAdministered   string  `json:"dateAdministered,omitempty"`
	NextDueDate        string  `json:"nextDueDate,omitempty"`
	AdministeredBy     string  `json:"administeredBy"`
	Notes              string  `json:"notes,omitempty"`
}

// Allergy captures a known allergen and the observed reaction.
type Allergy struct {
	ID           string `json:"id"`
	FarmID       string `json:"farmId"`
	LivestockID  string `json:"livestockId"`
	Allergen     string `json:"allergen"`
	Reaction     string `json:"reaction"`
	Severity     string `json:"severity,omitempty"`
	DateRecorded string `json:"dateRecorded,omitempty"`
	RecordedBy   string `json:"recordedBy"`
	Notes        string `json:"notes,omitempty"`
}

// Booster captures a booster shot following an earlier vaccination.
type Booster struct {
	ID               string  `json:"id"`
	FarmID           string  `json:"farmId"`
	LivestockID      string  `json:"livestockId"`
	BoosterAgainst   string  `json:"boosterAgainst"`
	DrugAdministered string  `json:"drugAdministered"`
	Dosage           float64 `json:"dosage"`
	DateAdministered string  `json:"dateAdministered,omitempty"`
	AdministeredBy   string  `json:"administeredBy"`
	Notes            string  `json:"notes,omitempty"`
}

// Deworming captures an anti-parasitic treatment.
type Deworming struct {
	ID               string  `json:"id"`
	FarmID           string  `json:"farmId"`
	LivestockID      string  `json:"livestockId"`
	DrugAdministered string  `json:"drugAdministered"`
	Dosage           float64 `json:"dosage"`
	DateAdministered string  `json:"dateAdministered,omitempty"`
	AdministeredBy   string  `json:"administeredBy"`
	Notes            string  `json:"notes,omitempty"`
}

// Treatment captures a curative intervention for a diagnosed condition.
type Treatment struct {
	ID             string  `json:"id"`
	FarmID         string  `json:"farmId"`
	LivestockID    string  `json:"livestockId"`
	Condition      string  `json:"condition"`
	Medication     string  `json:"medication"`
	Dosage         float64 `json:"dosage"`
	TreatmentDate  string  `json:"treatmentDate,omitempty"`
	AdministeredBy string  `json:"administeredBy"`
	Notes          string  `json:"notes,omitempty"`
}

// GeneticDisorder captures a diagnosed hereditary condition.
type GeneticDisorder struct {
	ID            string `json:"id"`
	FarmID        string `json:"farmId"`
	LivestockID   string `json:"livestockId"`
	DisorderName  string `json:"disorderName"`
	DiagnosisDate string `json:"diagnosisDate,omitempty"`
	Severity      string `json:"severity,omitempty"`
	RecordedBy    string `json:"recordedBy"`
	Notes         string `json:"notes,omitempty"`
}

// ValidationResult is returned by the pure validate functions screens call
// before submitting a record.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}
