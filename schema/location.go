package schema

import "time"

const (
	PatientHistoricLocationCollection = "patientHistoricLocation"
	CitizenLocationCollection         = "citizenLocation"
)

// Location - latitude / longitude in decimal degrees
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// PatientHistoricLocation is a geotagged record of where an infected patient
// has been. Patients are identified only by their infection status, never by
// personal identity. Records are written once by data-entry admins and are
// never mutated afterwards; they fall out of proximity queries once older
// than the configured retention window.
type PatientHistoricLocation struct {
	ID                string    `bson:"id" json:"id"`
	Location          Location  `bson:"location" json:"location"`
	RecordedAt        time.Time `bson:"recorded_at" json:"recorded_at"`
	InfectionStatusID string    `bson:"infection_status_id" json:"infection_status_id"`
}

// CitizenLocationEvent is a single location ping from a citizen device.
// Append-only; one citizen produces many of these.
type CitizenLocationEvent struct {
	ID            string   `bson:"id" json:"id"`
	AccountNumber string   `bson:"account_number" json:"-"`
	Location      Location `bson:"location" json:"location"`
	Timestamp     int64    `bson:"ts" json:"ts"`
}
