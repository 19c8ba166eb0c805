package hotspot

import (
	"context"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/data4life/data4life-api/schema"
	"github.com/data4life/data4life-api/utils"
)

const (
	// deliveryTimeout bounds one external push delivery call. A timeout is
	// treated like any other delivery failure and never blocks the audit
	// record insert.
	deliveryTimeout = 10 * time.Second

	defaultHotspotTitle = "Hotspot proximity warning !"
	defaultHotspotBody  = "There are disease hotspots nearby your location !"
)

// NotificationStore persists and looks up citizen push notification records
type NotificationStore interface {
	CreateNotification(n *schema.CitizenPushNotification) (string, error)
	LatestNotification(accountNumber string) (*schema.CitizenPushNotification, error)
}

// CitizenDirectory resolves notification targets
type CitizenDirectory interface {
	ListCitizenAccountNumbers() ([]string, error)
	DeviceTokens(accountNumber string) ([]string, error)
}

// NotificationCenter delivers a push message to a set of device tokens
type NotificationCenter interface {
	NotifyCitizen(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}

// Dispatcher rate-limits and delivers hotspot proximity alerts, and handles
// admin-initiated sends. Every decision to notify leaves a durable
// CitizenPushNotification record, whether or not the external delivery
// succeeded, so the cooldown trail reflects attempts instead of provider
// availability.
type Dispatcher struct {
	notifications NotificationStore
	citizens      CitizenDirectory
	center        NotificationCenter
	cooldown      time.Duration
	lang          string
	locks         *utils.KeyedMutex
}

func NewDispatcher(notifications NotificationStore, citizens CitizenDirectory, center NotificationCenter, cooldown time.Duration, lang string) *Dispatcher {
	if lang == "" {
		lang = "en"
	}

	return &Dispatcher{
		notifications: notifications,
		citizens:      citizens,
		center:        center,
		cooldown:      cooldown,
		lang:          lang,
		locks:         utils.NewKeyedMutex(),
	}
}

// MaybeNotifyProximity sends a hotspot alert to a citizen unless the citizen
// was notified within the cooldown window. The check-then-insert sequence is
// serialized per citizen so concurrent location pings cannot double-send.
// Returns whether an alert was recorded.
func (d *Dispatcher) MaybeNotifyProximity(accountNumber string, now time.Time) (bool, error) {
	unlock := d.locks.Lock(accountNumber)
	defer unlock()

	last, err := d.notifications.LatestNotification(accountNumber)
	if err != nil {
		return false, err
	}

	if last != nil && now.Sub(time.Unix(last.Timestamp, 0)) <= d.cooldown {
		log.WithFields(log.Fields{
			"prefix":         logPrefix,
			"account_number": accountNumber,
			"last_ts":        last.Timestamp,
		}).Debug("proximity alert suppressed by cooldown")
		return false, nil
	}

	title, body := d.hotspotMessage()
	d.deliver(accountNumber, title, body, schema.NotificationTypeHotspotProximity)

	if _, err := d.notifications.CreateNotification(&schema.CitizenPushNotification{
		AccountNumber: accountNumber,
		Type:          schema.NotificationTypeHotspotProximity,
		Title:         title,
		Body:          body,
		Read:          false,
		Timestamp:     now.Unix(),
	}); err != nil {
		return false, err
	}

	return true, nil
}

// NotifyOne sends an admin-initiated notification to a single citizen.
// There is no cooldown gate; delivery is best-effort and the record is
// always written.
func (d *Dispatcher) NotifyOne(accountNumber string, notificationType schema.NotificationType, title, body string) error {
	d.deliver(accountNumber, title, body, notificationType)

	_, err := d.notifications.CreateNotification(&schema.CitizenPushNotification{
		AccountNumber: accountNumber,
		Type:          notificationType,
		Title:         title,
		Body:          body,
		Read:          false,
		Timestamp:     time.Now().UTC().Unix(),
	})
	return err
}

// NotifyAll broadcasts an admin-initiated notification to every citizen in
// the system. Each citizen's send and record are independent; one citizen's
// failure never aborts the rest.
func (d *Dispatcher) NotifyAll(notificationType schema.NotificationType, title, body string) error {
	accountNumbers, err := d.citizens.ListCitizenAccountNumbers()
	if err != nil {
		return err
	}

	for _, accountNumber := range accountNumbers {
		if err := d.NotifyOne(accountNumber, notificationType, title, body); err != nil {
			log.WithFields(log.Fields{
				"prefix":         logPrefix,
				"account_number": accountNumber,
				"error":          err,
			}).Error("record broadcast notification")
		}
	}

	return nil
}

// deliver pushes a message to all devices of a citizen. Failures of any
// kind, the token lookup included, are logged and absorbed here; the caller
// proceeds to write the audit record regardless.
func (d *Dispatcher) deliver(accountNumber, title, body string, notificationType schema.NotificationType) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	tokens, err := d.citizens.DeviceTokens(accountNumber)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         logPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("look up device tokens")
		return
	}

	if err := d.center.NotifyCitizen(ctx, tokens, title, body, map[string]string{
		"type": string(notificationType),
	}); err != nil {
		log.WithFields(log.Fields{
			"prefix":         logPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("push delivery failed")
	}
}

func (d *Dispatcher) hotspotMessage() (string, string) {
	loc := utils.NewLocalizer(d.lang)

	title, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notifications.hotspot_proximity.title",
	})
	if err != nil {
		title = defaultHotspotTitle
	}

	body, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notifications.hotspot_proximity.body",
	})
	if err != nil {
		body = defaultHotspotBody
	}

	return title, body
}
