package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/data4life/data4life-api/schema"
)

// CreateCitizen registers a citizen account keyed by mobile number. The
// account number is generated and becomes the identifier referenced by
// location events and notification records.
func (s *Data4LifeStore) CreateCitizen(mobileNumber, fullName string) (*schema.Citizen, error) {
	c := schema.Citizen{
		ID:            uuid.New().String(),
		AccountNumber: uuid.New().String(),
		MobileNumber:  mobileNumber,
		FullName:      fullName,
	}

	var existing schema.Citizen
	err := s.ormDB.Where("mobile_number = ?", mobileNumber).First(&existing).Error
	if err == nil {
		return nil, ErrCitizenTaken
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, wrapStorage(err)
	}

	if err := s.ormDB.Create(&c).Error; err != nil {
		return nil, wrapStorage(err)
	}

	return &c, nil
}

// GetCitizenByMobile returns the citizen account of a given mobile number
func (s *Data4LifeStore) GetCitizenByMobile(mobileNumber string) (*schema.Citizen, error) {
	var c schema.Citizen
	if err := s.ormDB.Where("mobile_number = ?", mobileNumber).First(&c).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCitizenNotFound
		}
		return nil, wrapStorage(err)
	}
	return &c, nil
}

// GetCitizenByAccountNumber returns the citizen account of a given account number
func (s *Data4LifeStore) GetCitizenByAccountNumber(accountNumber string) (*schema.Citizen, error) {
	var c schema.Citizen
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&c).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCitizenNotFound
		}
		return nil, wrapStorage(err)
	}
	return &c, nil
}

// ListCitizenAccountNumbers returns the account numbers of every citizen
// currently in the system
func (s *Data4LifeStore) ListCitizenAccountNumbers() ([]string, error) {
	var citizens []schema.Citizen
	if err := s.ormDB.Select("account_number").Find(&citizens).Error; err != nil {
		return nil, wrapStorage(err)
	}

	accountNumbers := make([]string, 0, len(citizens))
	for _, c := range citizens {
		accountNumbers = append(accountNumbers, c.AccountNumber)
	}
	return accountNumbers, nil
}

// CountCitizens returns the total number of registered citizens
func (s *Data4LifeStore) CountCitizens() (int64, error) {
	var count int64
	if err := s.ormDB.Model(&schema.Citizen{}).Count(&count).Error; err != nil {
		return 0, wrapStorage(err)
	}
	return count, nil
}

// RegisterDeviceToken stores an FCM registration token for a citizen device.
// Registering the same token again is a no-op.
func (s *Data4LifeStore) RegisterDeviceToken(accountNumber, token, platform string) error {
	if _, err := s.GetCitizenByAccountNumber(accountNumber); err != nil {
		return err
	}

	var existing schema.PushDeviceToken
	err := s.ormDB.Where("account_number = ? AND token = ?", accountNumber, token).First(&existing).Error
	if err == nil {
		return nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return wrapStorage(err)
	}

	t := schema.PushDeviceToken{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Token:         token,
		Platform:      platform,
	}
	if err := s.ormDB.Create(&t).Error; err != nil {
		return wrapStorage(err)
	}
	return nil
}

// DeviceTokens returns all registered FCM tokens of a citizen
func (s *Data4LifeStore) DeviceTokens(accountNumber string) ([]string, error) {
	var records []schema.PushDeviceToken
	if err := s.ormDB.Where("account_number = ?", accountNumber).Find(&records).Error; err != nil {
		return nil, wrapStorage(err)
	}

	tokens := make([]string, 0, len(records))
	for _, r := range records {
		tokens = append(tokens, r.Token)
	}
	return tokens, nil
}
