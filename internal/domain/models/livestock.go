package models

// LivestockCategory distinguishes the two animal families the upstream API
// tracks; the active sub-object (Mammal or Poultry) follows the category.
type LivestockCategory string

const (
	CategoryMammal  LivestockCategory = "mammal"
	CategoryPoultry LivestockCategory = "poultry"
)

// Livestock represents one animal in the farm roster. It is owned by the
// upstream API; this service only reads it.
type Livestock struct {
	ID       string            `json:"id"`
	FarmID   string            `json:"farmId"`
	IDNumber string            `json:"idNumber"`
	Category LivestockCategory `json:"category"`
	Type     string            `json:"type"`
	Mammal   *MammalInfo       `json:"mammal,omitempty"`
	Poultry  *PoultryInfo      `json:"poultry,omitempty"`
}

// MammalInfo carries mammal-specific attributes.
type MammalInfo struct {
	Breed  string  `json:"breed"`
	Gender string  `json:"gender"`
	Weight float64 `json:"weight"`
}

// PoultryInfo carries poultry-specific attributes.
type PoultryInfo struct {
	Breed  string  `json:"breed"`
	Gender string  `json:"gender"`
	Weight float64 `json:"weight"`
}

// Breed resolves the breed name from whichever sub-object is populated.
func (l Livestock) Breed() string {
	switch {
	case l.Mammal != nil:
		return l.Mammal.Breed
	case l.Poultry != nil:
		return l.Poultry.Breed
	default:
		return ""
	}
}

// Display renders the roster entry the way list screens show it:
// "{idNumber} ({breed})".
func (l Livestock) Display() string {
	breed := l.Breed()
	if breed == "" {
		return l.IDNumber
	}
	return l.IDNumber + " (" + breed + ")"
}
