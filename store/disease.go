package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/data4life/data4life-api/schema"
)

// CreateDisease adds a disease to the system
func (s *Data4LifeStore) CreateDisease(name string) (string, error) {
	d := schema.Disease{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := s.ormDB.Create(&d).Error; err != nil {
		return "", wrapStorage(err)
	}
	return d.ID, nil
}

// CreateInfectionStatus adds an infection classification under a disease.
// Fails with ErrInvalidReference when the disease does not exist.
func (s *Data4LifeStore) CreateInfectionStatus(diseaseID, infectionStatus string) (string, error) {
	var d schema.Disease
	if err := s.ormDB.Where("id = ?", diseaseID).First(&d).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return "", ErrInvalidReference
		}
		return "", wrapStorage(err)
	}

	status := schema.DiseaseInfectionStatus{
		ID:              uuid.New().String(),
		DiseaseID:       diseaseID,
		InfectionStatus: infectionStatus,
	}
	if err := s.ormDB.Create(&status).Error; err != nil {
		return "", wrapStorage(err)
	}
	return status.ID, nil
}

// InfectionStatusExists reports whether an infection status record exists
func (s *Data4LifeStore) InfectionStatusExists(id string) (bool, error) {
	var status schema.DiseaseInfectionStatus
	err := s.ormDB.Where("id = ?", id).First(&status).Error
	if gorm.IsRecordNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, wrapStorage(err)
	}
	return true, nil
}
