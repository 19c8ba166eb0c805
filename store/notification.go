package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/data4life/data4life-api/schema"
)

var (
	invalidEarlier = fmt.Errorf("invalid earlier")
)

// Notification - operations on citizen push notification records
type Notification interface {
	CreateNotification(n *schema.CitizenPushNotification) (string, error)
	LatestNotification(accountNumber string) (*schema.CitizenPushNotification, error)
	ListNotifications(accountNumber string, limit int64, earlier int64) ([]schema.CitizenPushNotification, error)
	UpdateNotificationRead(accountNumber, id string, read bool) error
}

// CreateNotification durably records a dispatched (or attempted)
// notification. Only the read flag of the record ever mutates afterwards.
func (m *mongoDB) CreateNotification(n *schema.CitizenPushNotification) (string, error) {
	c := m.client.Database(m.database).Collection(schema.CitizenPushNotificationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Timestamp == 0 {
		n.Timestamp = time.Now().UTC().Unix()
	}

	if _, err := c.InsertOne(ctx, *n); err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": n.AccountNumber,
			"type":           n.Type,
			"error":          err,
		}).Error("insert citizen push notification")
		return "", wrapStorage(err)
	}

	return n.ID, nil
}

// LatestNotification returns the most recent notification record of any type
// for a citizen, or nil when the citizen has never been notified
func (m *mongoDB) LatestNotification(accountNumber string) (*schema.CitizenPushNotification, error) {
	c := m.client.Database(m.database).Collection(schema.CitizenPushNotificationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"account_number": accountNumber,
	}
	opts := options.FindOne().SetSort(bson.M{"ts": -1})

	var n schema.CitizenPushNotification
	err := c.FindOne(ctx, query, opts).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("query latest citizen push notification")
		return nil, wrapStorage(err)
	}

	return &n, nil
}

// ListNotifications returns up to limit notification records for a citizen
// with ts earlier than the given unix time, newest first
func (m *mongoDB) ListNotifications(accountNumber string, limit int64, earlier int64) ([]schema.CitizenPushNotification, error) {
	c := m.client.Database(m.database).Collection(schema.CitizenPushNotificationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if earlier <= 0 {
		return nil, invalidEarlier
	}

	query := bson.M{
		"account_number": accountNumber,
		"ts": bson.M{
			"$lt": earlier,
		},
	}
	opts := options.Find()
	opts = opts.SetSort(bson.M{"ts": -1}).SetLimit(limit)

	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"earlier":        earlier,
			"limit":          limit,
			"error":          err,
		}).Error("list citizen push notifications")
		return nil, wrapStorage(err)
	}

	result := make([]schema.CitizenPushNotification, 0)
	for cur.Next(ctx) {
		var n schema.CitizenPushNotification
		if err = cur.Decode(&n); err != nil {
			return nil, err
		}
		result = append(result, n)
	}

	return result, nil
}

// UpdateNotificationRead flips the read flag of a notification record. All
// other fields of the record are immutable.
func (m *mongoDB) UpdateNotificationRead(accountNumber, id string, read bool) error {
	c := m.client.Database(m.database).Collection(schema.CitizenPushNotificationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"id":             id,
		"account_number": accountNumber,
	}
	update := bson.M{
		"$set": bson.M{
			"read": read,
		},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"id":             id,
			"error":          err,
		}).Error("update citizen push notification read flag")
		return wrapStorage(err)
	}

	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
