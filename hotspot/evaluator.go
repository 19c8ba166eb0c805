package hotspot

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/data4life/data4life-api/geo"
	"github.com/data4life/data4life-api/schema"
	"github.com/data4life/data4life-api/store"
)

const logPrefix = "hotspot"

// LocationSource provides the non-expired patient historic locations,
// ordered most recent first
type LocationSource interface {
	ActivePatientLocations(now time.Time, retention time.Duration) (store.PatientLocationIterator, error)
}

// Result of one proximity evaluation. DistanceMeters is only meaningful
// when Hit is true.
type Result struct {
	Hit            bool
	DistanceMeters float64
}

// Evaluator decides whether a citizen position is inside a hotspot: within
// proximityMeters of any patient historic location younger than the
// retention window.
type Evaluator struct {
	source          LocationSource
	proximityMeters float64
	retention       time.Duration
}

func NewEvaluator(source LocationSource, proximityMeters float64, retention time.Duration) *Evaluator {
	return &Evaluator{
		source:          source,
		proximityMeters: proximityMeters,
		retention:       retention,
	}
}

// Evaluate scans candidates in recency order and stops at the first one
// within the threshold (inclusive). The scan is biased toward the freshest
// exposure data, not the globally nearest hotspot. Source failures
// propagate; they are never reported as a miss.
func (e *Evaluator) Evaluate(lat, long float64, now time.Time) (Result, error) {
	it, err := e.source.ActivePatientLocations(now, e.retention)
	if err != nil {
		return Result{}, err
	}
	defer it.Close()

	citizen := schema.Location{
		Latitude:  lat,
		Longitude: long,
	}

	for {
		candidate, err := it.Next()
		if err != nil {
			return Result{}, err
		}
		if candidate == nil {
			break
		}

		d := geo.Distance(citizen, candidate.Location)
		if d <= e.proximityMeters {
			log.WithFields(log.Fields{
				"prefix":          logPrefix,
				"distance_meters": d,
				"recorded_at":     candidate.RecordedAt,
			}).Debug("proximity hit")

			return Result{
				Hit:            true,
				DistanceMeters: d,
			}, nil
		}
	}

	return Result{}, nil
}
