package store

import (
	"context"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/data4life/data4life-api/schema"
)

const (
	citizenTestAccount = "account-test-citizen"
	citizenTestMobile  = "+919800000001"
)

var (
	citizenTestFixture = schema.Citizen{
		ID:            "citizen-fixture",
		AccountNumber: citizenTestAccount,
		MobileNumber:  citizenTestMobile,
		FullName:      "Fixture Citizen",
	}
	citizenTestDisease = schema.Disease{
		ID:   "disease-fixture",
		Name: "COVID-19",
	}
	citizenTestInfectionStatus = schema.DiseaseInfectionStatus{
		ID:              "status-fixture",
		DiseaseID:       "disease-fixture",
		InfectionStatus: "with symptoms",
	}
)

type CitizenTestSuite struct {
	suite.Suite
	ormConnURI   string
	connURI      string
	testDBName   string
	ormDB        *gorm.DB
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewCitizenTestSuite(ormConnURI, connURI, dbName string) *CitizenTestSuite {
	return &CitizenTestSuite{
		ormConnURI: ormConnURI,
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *CitizenTestSuite) SetupSuite() {
	if s.ormConnURI == "" || s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	ormDB, err := gorm.Open("postgres", s.ormConnURI)
	if err != nil {
		s.T().Fatalf("connect postgres database with error: %s", err)
	}
	s.ormDB = ormDB

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.MigrateTables(); err != nil {
		s.T().Fatal(err)
	}
	if err := s.LoadDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// MigrateTables recreates the relational tables for a clean environment
func (s *CitizenTestSuite) MigrateTables() error {
	if err := s.ormDB.DropTableIfExists(
		&schema.Citizen{},
		&schema.PushDeviceToken{},
		&schema.Disease{},
		&schema.DiseaseInfectionStatus{},
	).Error; err != nil {
		return err
	}

	return s.ormDB.AutoMigrate(
		&schema.Citizen{},
		&schema.PushDeviceToken{},
		&schema.Disease{},
		&schema.DiseaseInfectionStatus{},
	).Error
}

// LoadDBFixtures will preload fixtures into the test databases
func (s *CitizenTestSuite) LoadDBFixtures() error {
	if err := s.ormDB.Create(&citizenTestFixture).Error; err != nil {
		return err
	}
	if err := s.ormDB.Create(&citizenTestDisease).Error; err != nil {
		return err
	}
	return s.ormDB.Create(&citizenTestInfectionStatus).Error
}

// CleanMongoDB drop the whole test mongodb
func (s *CitizenTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *CitizenTestSuite) store() *Data4LifeStore {
	return NewData4LifeStore(s.ormDB, NewMongoStore(s.mongoClient, s.testDBName))
}

func (s *CitizenTestSuite) TestCreateCitizen() {
	store := s.store()

	c, err := store.CreateCitizen("+919800000002", "New Citizen")
	s.NoError(err)
	s.NotNil(c)
	s.NotEmpty(c.AccountNumber)

	fetched, err := store.GetCitizenByAccountNumber(c.AccountNumber)
	s.NoError(err)
	s.Equal("+919800000002", fetched.MobileNumber)
}

func (s *CitizenTestSuite) TestCreateCitizenTakenMobile() {
	store := s.store()

	_, err := store.CreateCitizen(citizenTestMobile, "Someone Else")
	s.Equal(ErrCitizenTaken, err)
}

func (s *CitizenTestSuite) TestCreateInfectionStatusUnknownDisease() {
	store := s.store()

	_, err := store.CreateInfectionStatus("no-such-disease", "with symptoms")
	s.Equal(ErrInvalidReference, err)
}

func (s *CitizenTestSuite) TestGetCitizenByMobileUnknown() {
	store := s.store()

	_, err := store.GetCitizenByMobile("+910000000000")
	s.Equal(ErrCitizenNotFound, err)
}

func (s *CitizenTestSuite) TestListCitizenAccountNumbers() {
	store := s.store()

	accountNumbers, err := store.ListCitizenAccountNumbers()
	s.NoError(err)
	s.Contains(accountNumbers, citizenTestAccount)
}

func (s *CitizenTestSuite) TestRecordCitizenLocation() {
	store := s.store()

	id, err := store.RecordCitizenLocation(citizenTestAccount, 12.9716, 77.5946)
	s.NoError(err)
	s.NotEmpty(id)

	var stored schema.CitizenLocationEvent
	err = s.testDatabase.Collection(schema.CitizenLocationCollection).
		FindOne(context.Background(), bson.M{"id": id}).Decode(&stored)
	s.NoError(err)
	s.Equal(citizenTestAccount, stored.AccountNumber)
}

func (s *CitizenTestSuite) TestRecordCitizenLocationUnknownCitizen() {
	store := s.store()

	_, err := store.RecordCitizenLocation("account-never-registered", 12.9716, 77.5946)
	s.Equal(ErrInvalidReference, err)
}

func (s *CitizenTestSuite) TestRecordPatientLocation() {
	store := s.store()

	id, err := store.RecordPatientLocation(12.9716, 77.5946, locationTestBase, citizenTestInfectionStatus.ID)
	s.NoError(err)
	s.NotEmpty(id)

	var stored schema.PatientHistoricLocation
	err = s.testDatabase.Collection(schema.PatientHistoricLocationCollection).
		FindOne(context.Background(), bson.M{"id": id}).Decode(&stored)
	s.NoError(err)
	s.Equal(citizenTestInfectionStatus.ID, stored.InfectionStatusID)
}

// TestRecordPatientLocationUnknownInfectionStatus tests that an upload
// referencing a nonexistent infection status is rejected without writing a
// location record.
func (s *CitizenTestSuite) TestRecordPatientLocationUnknownInfectionStatus() {
	store := s.store()

	_, err := store.RecordPatientLocation(12.9716, 77.5946, locationTestBase, "no-such-status")
	s.Equal(ErrInvalidReference, err)

	count, err := s.testDatabase.Collection(schema.PatientHistoricLocationCollection).
		CountDocuments(context.Background(), bson.M{"infection_status_id": "no-such-status"})
	s.NoError(err)
	s.Equal(int64(0), count)
}

func (s *CitizenTestSuite) TestRegisterDeviceToken() {
	store := s.store()

	s.NoError(store.RegisterDeviceToken(citizenTestAccount, "token-test-1", "android"))
	// registering the same token twice is a no-op
	s.NoError(store.RegisterDeviceToken(citizenTestAccount, "token-test-1", "android"))

	tokens, err := store.DeviceTokens(citizenTestAccount)
	s.NoError(err)
	s.Equal([]string{"token-test-1"}, tokens)

	s.Equal(ErrCitizenNotFound, store.RegisterDeviceToken("account-never-registered", "token-test-2", "ios"))
}

func TestCitizenTestSuite(t *testing.T) {
	suite.Run(t, NewCitizenTestSuite(
		"postgres://postgres@127.0.0.1:5432/test-db?sslmode=disable",
		"mongodb://127.0.0.1:27017/?compressors=disabled",
		"test-db"))
}
