package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/data4life/data4life-api/schema"
)

// data4life main datastore
type Data4LifeCore interface {
	Ping() error

	// Citizen
	CreateCitizen(mobileNumber, fullName string) (*schema.Citizen, error)
	GetCitizenByMobile(mobileNumber string) (*schema.Citizen, error)
	GetCitizenByAccountNumber(accountNumber string) (*schema.Citizen, error)
	ListCitizenAccountNumbers() ([]string, error)

	// Device tokens
	RegisterDeviceToken(accountNumber, token, platform string) error
	DeviceTokens(accountNumber string) ([]string, error)

	// Disease administration
	CreateDisease(name string) (string, error)
	CreateInfectionStatus(diseaseID, infectionStatus string) (string, error)
	InfectionStatusExists(id string) (bool, error)
	CountCitizens() (int64, error)

	// Location store writes
	RecordPatientLocation(lat, long float64, recordedAt time.Time, infectionStatusID string) (string, error)
	RecordCitizenLocation(accountNumber string, lat, long float64) (string, error)
}

// Data4LifeStore is an implementation of Data4LifeCore. Citizen accounts,
// device tokens and disease administration live in postgres; location events
// and notification records live in mongodb.
type Data4LifeStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewData4LifeStore(ormDB *gorm.DB, mongo MongoStore) *Data4LifeStore {
	return &Data4LifeStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *Data4LifeStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return wrapStorage(err)
	}
	return s.mongo.Ping()
}

// RecordPatientLocation inserts a patient historic location after validating
// the infection status reference. The recorded timestamp is immutable once
// written.
func (s *Data4LifeStore) RecordPatientLocation(lat, long float64, recordedAt time.Time, infectionStatusID string) (string, error) {
	exists, err := s.InfectionStatusExists(infectionStatusID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrInvalidReference
	}

	return s.mongo.InsertPatientLocation(lat, long, recordedAt, infectionStatusID)
}

// RecordCitizenLocation appends a citizen location ping, timestamped at call
// time. Fails when the citizen account does not exist.
func (s *Data4LifeStore) RecordCitizenLocation(accountNumber string, lat, long float64) (string, error) {
	if _, err := s.GetCitizenByAccountNumber(accountNumber); err != nil {
		if err == ErrCitizenNotFound {
			return "", ErrInvalidReference
		}
		return "", err
	}

	return s.mongo.InsertCitizenLocation(accountNumber, lat, long)
}
