package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexPatientHistoricLocationCollection())
	panicIfError(m.IndexCitizenLocationCollection())
	panicIfError(m.IndexCitizenPushNotificationCollection())
}

// IndexPatientHistoricLocationCollection supports the retention-window range
// scan ordered most-recent-first
func (m *MongoDBIndexer) IndexPatientHistoricLocationCollection() error {
	return m.createIndex(PatientHistoricLocationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "recorded_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexCitizenLocationCollection() error {
	return m.createIndex(CitizenLocationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_number", Value: 1},
			{Key: "ts", Value: -1},
		},
	})
}

// IndexCitizenPushNotificationCollection supports the latest-notification
// cooldown lookup and the newest-first listing per citizen
func (m *MongoDBIndexer) IndexCitizenPushNotificationCollection() error {
	if err := m.createIndex(CitizenPushNotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_number", Value: 1},
			{Key: "ts", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(CitizenPushNotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
