package schema

import "time"

// Citizen is a registered citizen account. Mobile number is the user-facing
// identity; account number is the opaque identifier carried in JWTs and
// referenced by location events and notifications.
type Citizen struct {
	ID            string `gorm:"primary_key" json:"id"`
	AccountNumber string `gorm:"unique_index" json:"account_number"`
	MobileNumber  string `gorm:"unique_index" json:"mobile_number"`
	FullName      string `json:"full_name"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PushDeviceToken is an FCM registration token of one citizen device
type PushDeviceToken struct {
	ID            string `gorm:"primary_key" json:"id"`
	AccountNumber string `gorm:"index" json:"-"`
	Token         string `json:"token"`
	Platform      string `json:"platform"`
	CreatedAt     time.Time
}

// Disease is a disease tracked by the system
type Disease struct {
	ID   string `gorm:"primary_key" json:"id"`
	Name string `gorm:"unique_index" json:"name"`
}

// DiseaseInfectionStatus is an infection classification of a disease,
// e.g. "with symptoms" / "without symptoms". Patient historic locations
// reference one of these instead of a personal identity.
type DiseaseInfectionStatus struct {
	ID              string `gorm:"primary_key" json:"id"`
	DiseaseID       string `gorm:"index" json:"disease_id"`
	InfectionStatus string `json:"infection_status"`
}
