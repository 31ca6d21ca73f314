package models

// ServiceType enumerates the supported breeding methods. The artificial
// insemination variant gates the AI-only fields on a breeding record.
type ServiceType string

const (
	ServiceNaturalMating          ServiceType = "Natural Mating"
	ServiceArtificialInsemination ServiceType = "Artificial Insemination"
)

// DefaultGestationDays is applied when a record is created without an
// explicit gestation period.
const DefaultGestationDays = 280

// ParentInfo is the denormalized identity of a dam or sire carried on
// breeding records and copied onto offspring entries.
type ParentInfo struct {
	IDNumber string `json:"idNumber"`
	Type     string `json:"type"`
	Breed    string `json:"breed"`
}

// BreedingRecord models one breeding event and its lifecycle: service,
// pregnancy, birth, offspring registration. Date fields are RFC3339 strings
// as sent by the upstream API.
type BreedingRecord struct {
	ID          string      `json:"id"`
	FarmID      string      `json:"farmId"`
	DamID       string      `json:"damId"`
	DamInfo     *ParentInfo `json:"damInfo,omitempty"`
	SireID      string      `json:"sireId"`
	SireInfo    *ParentInfo `json:"sireInfo,omitempty"`
	SireCode    string      `json:"sireCode,omitempty"`
	Purpose     string      `json:"purpose"`
	Strategy    string      `json:"strategy"`
	ServiceType ServiceType `json:"serviceType"`

	ServiceDate       string `json:"serviceDate,omitempty"`
	NumServices       int    `json:"numServices,omitempty"`
	FirstHeatDate     string `json:"firstHeatDate,omitempty"`
	GestationDays     int    `json:"gestationDays,omitempty"`
	ExpectedBirthDate string `json:"expectedBirthDate,omitempty"`

	// Present only when ServiceType is artificial insemination.
	AIType   string  `json:"aiType,omitempty"`
	AISource string  `json:"aiSource,omitempty"`
	AICost   float64 `json:"aiCost,omitempty"`

	BirthRecorded  bool        `json:"birthRecorded,omitempty"`
	BirthDate      string      `json:"birthDate,omitempty"`
	DeliveryMethod string      `json:"deliveryMethod,omitempty"`
	LitterWeight   float64     `json:"litterWeight,omitempty"`
	Offspring      []Offspring `json:"offspring,omitempty"`
	BirthInfo      *BirthInfo  `json:"birthInfo,omitempty"`
}

// BirthInfo is the upstream's grouped view of a recorded birth. Older
// records carry the same values as top-level fields instead.
type BirthInfo struct {
	BirthDate      string  `json:"birthDate"`
	DeliveryMethod string  `json:"deliveryMethod"`
	LitterWeight   float64 `json:"litterWeight"`
}

// Offspring is one birth-event child embedded in a breeding record. Parent
// and birth metadata are copied onto every entry so the record is
// self-describing without a join; LivestockID is set once the offspring is
// registered as a roster animal.
type Offspring struct {
	OffspringID string   `json:"offspringId"`
	Sex         string   `json:"sex"`
	BirthWeight *float64 `json:"birthWeight,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	LivestockID string   `json:"livestockId,omitempty"`

	DamID        string      `json:"damId"`
	DamInfo      *ParentInfo `json:"damInfo,omitempty"`
	SireID       string      `json:"sireId"`
	SireInfo     *ParentInfo `json:"sireInfo,omitempty"`
	SireCode     string      `json:"sireCode,omitempty"`
	ServiceType  ServiceType `json:"serviceType"`
	BreedingDate string      `json:"breedingDate,omitempty"`

	DeliveryMethod string  `json:"deliveryMethod,omitempty"`
	BirthDate      string  `json:"birthDate,omitempty"`
	LitterWeight   float64 `json:"litterWeight,omitempty"`
}

// BreedingStatistics is the upstream's aggregate view for a farm; this
// service passes it through untouched.
type BreedingStatistics struct {
	TotalRecords      int            `json:"totalRecords"`
	ActivePregnancies int            `json:"activePregnancies"`
	DueSoon           int            `json:"dueSoon"`
	Overdue           int            `json:"overdue"`
	TotalOffspring    int            `json:"totalOffspring"`
	ByServiceType     map[string]int `json:"byServiceType,omitempty"`
}

// DetailedBreedingRecord is a breeding record joined with the livestock
// roster for presentation: bare dam/sire ids replaced with display strings.
type DetailedBreedingRecord struct {
	BreedingRecord
	DamDisplay  string `json:"damDisplay"`
	SireDisplay string `json:"sireDisplay"`
}
