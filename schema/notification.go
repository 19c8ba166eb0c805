package schema

const (
	CitizenPushNotificationCollection = "citizenPushNotification"
)

// NotificationType is the closed set of push notification categories
type NotificationType string

const (
	NotificationTypeContactTracing   NotificationType = "CONTACT-TRACING"
	NotificationTypeHotspotProximity NotificationType = "HOTSPOT-PROXIMITY"
	NotificationTypeAnnouncement     NotificationType = "ANNOUNCEMENT"
)

// ValidNotificationType reports whether t is one of the known categories
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeContactTracing, NotificationTypeHotspotProximity, NotificationTypeAnnouncement:
		return true
	}
	return false
}

// CitizenPushNotification is the durable record of a push notification
// dispatched (or attempted) to a citizen. Everything except the read flag is
// immutable once created. A record is written even when delivery fails so
// the audit and cooldown trail reflects the attempt.
type CitizenPushNotification struct {
	ID            string           `bson:"id" json:"id"`
	AccountNumber string           `bson:"account_number" json:"-"`
	Type          NotificationType `bson:"type" json:"type"`
	Title         string           `bson:"title" json:"title"`
	Body          string           `bson:"body" json:"body"`
	Read          bool             `bson:"read" json:"read"`
	Timestamp     int64            `bson:"ts" json:"ts"`
}
