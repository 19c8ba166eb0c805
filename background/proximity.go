package background

import (
	"time"

	"github.com/data4life/data4life-api/schema"
)

// ProximityCheck is the background job behind every citizen location sync:
// evaluate the position against non-expired patient historic locations and
// dispatch a cooldown-gated alert on a hit. Running it off the request path
// keeps slow push deliveries from stalling unrelated location syncs.
func (m *BackgroundManager) ProximityCheck(accountNumber string, lat, long float64, ts int64) error {
	return m.pipeline.HandleLocationUpdate(accountNumber, lat, long, time.Unix(ts, 0))
}

// BroadcastNotification is the background job behind the admin send-all
// endpoint
func (m *BackgroundManager) BroadcastNotification(notificationType, title, body string) error {
	return m.dispatcher.NotifyAll(schema.NotificationType(notificationType), title, body)
}
