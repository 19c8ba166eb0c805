package hotspot

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// ProximityEvaluator decides whether a position is inside a hotspot
type ProximityEvaluator interface {
	Evaluate(lat, long float64, now time.Time) (Result, error)
}

// ProximityNotifier sends a cooldown-gated hotspot alert
type ProximityNotifier interface {
	MaybeNotifyProximity(accountNumber string, now time.Time) (bool, error)
}

// Pipeline wires a citizen location update through proximity evaluation and
// notification dispatch
type Pipeline struct {
	evaluator ProximityEvaluator
	notifier  ProximityNotifier
}

func NewPipeline(evaluator ProximityEvaluator, notifier ProximityNotifier) *Pipeline {
	return &Pipeline{
		evaluator: evaluator,
		notifier:  notifier,
	}
}

// HandleLocationUpdate evaluates one citizen location ping and, on a
// proximity hit, runs the notification dispatcher. The outcome of dispatch
// (sent or suppressed) is not an error either way.
func (p *Pipeline) HandleLocationUpdate(accountNumber string, lat, long float64, now time.Time) error {
	result, err := p.evaluator.Evaluate(lat, long, now)
	if err != nil {
		return err
	}

	if !result.Hit {
		return nil
	}

	sent, err := p.notifier.MaybeNotifyProximity(accountNumber, now)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":          logPrefix,
		"account_number":  accountNumber,
		"distance_meters": result.DistanceMeters,
		"sent":            sent,
	}).Info("handled proximity hit")

	return nil
}
