package models

// PregnancyState classifies where a breeding record sits in its lifecycle
// relative to the expected birth date.
type PregnancyState string

const (
	PregnancyDelivered PregnancyState = "delivered"
	PregnancyOverdue   PregnancyState = "overdue"
	PregnancyDueSoon   PregnancyState = "due_soon"
	PregnancyPregnant  PregnancyState = "pregnant"
)

// DueSoonWindowDays is the remaining-day threshold below which a pregnancy
// is flagged as due soon.
const DueSoonWindowDays = 7

// PregnancyStatus is a derived value, never persisted. Exactly one of
// DaysRemaining/DaysOverdue is meaningful depending on State.
type PregnancyStatus struct {
	State             PregnancyState `json:"state"`
	DaysRemaining     int            `json:"daysRemaining,omitempty"`
	DaysOverdue       int            `json:"daysOverdue,omitempty"`
	ExpectedBirthDate string         `json:"expectedBirthDate,omitempty"`
}
