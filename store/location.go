package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/data4life/data4life-api/schema"
)

// PatientLocation - operations on patient historic locations
type PatientLocation interface {
	InsertPatientLocation(lat, long float64, recordedAt time.Time, infectionStatusID string) (string, error)
	ActivePatientLocations(now time.Time, retention time.Duration) (PatientLocationIterator, error)
	CountActivePatientLocations(now time.Time, retention time.Duration) (int64, error)
}

// CitizenLocation - operations on citizen location events
type CitizenLocation interface {
	InsertCitizenLocation(accountNumber string, lat, long float64) (string, error)
}

// PatientLocationIterator walks patient historic locations lazily, most
// recent first. Next returns nil at the end of the sequence. The iterator
// must be closed after use; a fresh call to ActivePatientLocations restarts
// the sequence.
type PatientLocationIterator interface {
	Next() (*schema.PatientHistoricLocation, error)
	Close()
}

type patientLocationCursor struct {
	ctx    context.Context
	cancel context.CancelFunc
	cursor *mongo.Cursor
}

func (c *patientLocationCursor) Next() (*schema.PatientHistoricLocation, error) {
	if c.cursor.Next(c.ctx) {
		var p schema.PatientHistoricLocation
		if err := c.cursor.Decode(&p); err != nil {
			return nil, err
		}
		return &p, nil
	}

	if err := c.cursor.Err(); err != nil {
		return nil, wrapStorage(err)
	}
	return nil, nil
}

func (c *patientLocationCursor) Close() {
	_ = c.cursor.Close(c.ctx)
	c.cancel()
}

func (m *mongoDB) InsertPatientLocation(lat, long float64, recordedAt time.Time, infectionStatusID string) (string, error) {
	c := m.client.Database(m.database).Collection(schema.PatientHistoricLocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	record := schema.PatientHistoricLocation{
		ID: uuid.New().String(),
		Location: schema.Location{
			Latitude:  lat,
			Longitude: long,
		},
		RecordedAt:        recordedAt.UTC(),
		InfectionStatusID: infectionStatusID,
	}

	if _, err := c.InsertOne(ctx, record); err != nil {
		log.WithFields(log.Fields{
			"prefix":              mongoLogPrefix,
			"infection_status_id": infectionStatusID,
			"error":               err,
		}).Error("insert patient historic location")
		return "", wrapStorage(err)
	}

	return record.ID, nil
}

// ActivePatientLocations returns all patient locations recorded at or after
// now - retention, ordered most recent first. The boundary is inclusive.
func (m *mongoDB) ActivePatientLocations(now time.Time, retention time.Duration) (PatientLocationIterator, error) {
	c := m.client.Database(m.database).Collection(schema.PatientHistoricLocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), cursorTimeout)

	query := bson.M{
		"recorded_at": bson.M{
			"$gte": now.Add(-retention).UTC(),
		},
	}
	opts := options.Find().SetSort(bson.M{"recorded_at": -1})

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		cancel()
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("query active patient historic locations")
		return nil, wrapStorage(err)
	}

	return &patientLocationCursor{
		ctx:    ctx,
		cancel: cancel,
		cursor: cursor,
	}, nil
}

func (m *mongoDB) CountActivePatientLocations(now time.Time, retention time.Duration) (int64, error) {
	c := m.client.Database(m.database).Collection(schema.PatientHistoricLocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"recorded_at": bson.M{
			"$gte": now.Add(-retention).UTC(),
		},
	}

	count, err := c.CountDocuments(ctx, query)
	if err != nil {
		return 0, wrapStorage(err)
	}
	return count, nil
}

func (m *mongoDB) InsertCitizenLocation(accountNumber string, lat, long float64) (string, error) {
	c := m.client.Database(m.database).Collection(schema.CitizenLocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	event := schema.CitizenLocationEvent{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Location: schema.Location{
			Latitude:  lat,
			Longitude: long,
		},
		Timestamp: time.Now().UTC().Unix(),
	}

	if _, err := c.InsertOne(ctx, event); err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("insert citizen location event")
		return "", wrapStorage(err)
	}

	return event.ID, nil
}
