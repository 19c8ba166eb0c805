package hotspot_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/data4life/data4life-api/external/fcm"
	"github.com/data4life/data4life-api/hotspot"
	"github.com/data4life/data4life-api/hotspot/mocks"
	"github.com/data4life/data4life-api/schema"
)

const (
	testAccount  = "account-test-dispatch"
	testCooldown = 300 * time.Second
)

func TestMaybeNotifyProximityFirstAlert(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	now := time.Now()

	notifications := mocks.NewMockNotificationStore(ctl)
	citizens := mocks.NewMockCitizenDirectory(ctl)
	center := mocks.NewMockNotificationCenter(ctl)

	notifications.EXPECT().LatestNotification(testAccount).Return(nil, nil).Times(1)
	citizens.EXPECT().DeviceTokens(testAccount).Return([]string{"token-1"}, nil).Times(1)
	center.EXPECT().NotifyCitizen(gomock.Any(), []string{"token-1"}, gomock.Any(), gomock.Any(),
		map[string]string{"type": "HOTSPOT-PROXIMITY"}).Return(nil).Times(1)
	notifications.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(
		func(n *schema.CitizenPushNotification) (string, error) {
			assert.Equal(t, testAccount, n.AccountNumber)
			assert.Equal(t, schema.NotificationTypeHotspotProximity, n.Type)
			assert.False(t, n.Read)
			assert.Equal(t, now.Unix(), n.Timestamp)
			return "id-1", nil
		}).Times(1)

	d := hotspot.NewDispatcher(notifications, citizens, center, testCooldown, "en")
	sent, err := d.MaybeNotifyProximity(testAccount, now)

	assert.NoError(t, err)
	assert.True(t, sent)
}

func TestMaybeNotifyProximitySuppressedByCooldown(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	now := time.Now()

	notifications := mocks.NewMockNotificationStore(ctl)
	citizens := mocks.NewMockCitizenDirectory(ctl)
	center := mocks.NewMockNotificationCenter(ctl)

	// last alert 10 seconds ago, cooldown 300s: suppress with no external
	// call and no new record
	notifications.EXPECT().LatestNotification(testAccount).Return(&schema.CitizenPushNotification{
		Timestamp: now.Add(-10 * time.Second).Unix(),
	}, nil).Times(1)

	d := hotspot.NewDispatcher(notifications, citizens, center, testCooldown, "en")
	sent, err := d.MaybeNotifyProximity(testAccount, now)

	assert.NoError(t, err)
	assert.False(t, sent)
}

func TestMaybeNotifyProximityCooldownElapsed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	now := time.Now()

	notifications := mocks.NewMockNotificationStore(ctl)
	citizens := mocks.NewMockCitizenDirectory(ctl)
	center := mocks.NewMockNotificationCenter(ctl)

	notifications.EXPECT().LatestNotification(testAccount).Return(&schema.CitizenPushNotification{
		Timestamp: now.Add(-301 * time.Second).Unix(),
	}, nil).Times(1)
	citizens.EXPECT().DeviceTokens(testAccount).Return([]string{"token-1"}, nil).Times(1)
	center.EXPECT().NotifyCitizen(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(1)
	notifications.EXPECT().CreateNotification(gomock.Any()).Return("id-2", nil).Times(1)

	d := hotspot.NewDispatcher(notifications, citizens, center, testCooldown, "en")
	sent, err := d.MaybeNotifyProximity(testAccount, now)

	assert.NoError(t, err)
	assert.True(t, sent)
}

func TestMaybeNotifyProximityDeliveryFailureStillRecords(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	now := time.Now()

	notifications := mocks.NewMockNotificationStore(ctl)
	citizens := mocks.NewMockCitizenDirectory(ctl)
	center := mocks.NewMockNotificationCenter(ctl)

	notifications.EXPECT().LatestNotification(testAccount).Return(nil, nil).Times(1)
	citizens.EXPECT().DeviceTokens(testAccount).Return([]string{"token-1"}, nil).Times(1)
	center.EXPECT().NotifyCitizen(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&fcm.DeliveryError{Reason: "provider timeout"}).Times(1)
	notifications.EXPECT().CreateNotification(gomock.Any()).Return("id-3", nil).Times(1)

	d := hotspot.NewDispatcher(notifications, citizens, center, testCooldown, "en")
	sent, err := d.MaybeNotifyProximity(testAccount, now)

	assert.NoError(t, err)
	assert.True(t, sent, "a delivery failure still counts as an attempted alert")
}

func TestMaybeNotifyProximityStoreFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	now := time.Now()

	notifications := mocks.NewMockNotificationStore(ctl)
	citizens := mocks.NewMockCitizenDirectory(ctl)
	center := mocks.NewMockNotificationCenter(ctl)

	notifications.EXPECT().LatestNotification(testAccount).
		Return(nil, fmt.Errorf("storage unavailable")).Times(1)

	d := hotspot.NewDispatcher(notifications, citizens, center, testCooldown, "en")
	_, err := d.MaybeNotifyProximity(testAccount, now)

	assert.Error(t, err)
}

// memoryNotificationStore is a stateful fake for concurrency scenarios
type memoryNotificationStore struct {
	mu      sync.Mutex
	records []schema.CitizenPushNotification
}

func (m *memoryNotificationStore) CreateNotification(n *schema.CitizenPushNotification) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = uuid.New().String()
	m.records = append(m.records, *n)
	return n.ID, nil
}

func (m *memoryNotificationStore) LatestNotification(accountNumber string) (*schema.CitizenPushNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *schema.CitizenPushNotification
	for i := range m.records {
		n := m.records[i]
		if n.AccountNumber != accountNumber {
			continue
		}
		if latest == nil || n.Timestamp > latest.Timestamp {
			latest = &n
		}
	}
	return latest, nil
}

type noopCenter struct{}

func (noopCenter) NotifyCitizen(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	return nil
}

func TestMaybeNotifyProximityConcurrentPings(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	now := time.Now()
	notifications := &memoryNotificationStore{}

	citizens := mocks.NewMockCitizenDirectory(ctl)
	citizens.EXPECT().DeviceTokens(testAccount).Return([]string{"token-1"}, nil).AnyTimes()

	d := hotspot.NewDispatcher(notifications, citizens, noopCenter{}, testCooldown, "en")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.MaybeNotifyProximity(testAccount, now)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, notifications.records, 1,
		"concurrent pings within the cooldown must produce exactly one record")
}

func TestNotifyOneAlwaysRecords(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	notifications := mocks.NewMockNotificationStore(ctl)
	citizens := mocks.NewMockCitizenDirectory(ctl)
	center := mocks.NewMockNotificationCenter(ctl)

	// no cooldown lookup on the admin path
	citizens.EXPECT().DeviceTokens(testAccount).Return([]string{"token-1"}, nil).Times(1)
	center.EXPECT().NotifyCitizen(gomock.Any(), gomock.Any(), "Vaccination drive", "Centers open this weekend",
		map[string]string{"type": "ANNOUNCEMENT"}).
		Return(&fcm.DeliveryError{Reason: "rejected token"}).Times(1)
	notifications.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(
		func(n *schema.CitizenPushNotification) (string, error) {
			assert.Equal(t, schema.NotificationTypeAnnouncement, n.Type)
			assert.Equal(t, "Vaccination drive", n.Title)
			return "id-4", nil
		}).Times(1)

	d := hotspot.NewDispatcher(notifications, citizens, center, testCooldown, "en")
	err := d.NotifyOne(testAccount, schema.NotificationTypeAnnouncement, "Vaccination drive", "Centers open this weekend")

	assert.NoError(t, err, "delivery failure must not surface on the admin path")
}

func TestNotifyAllPartialDeliveryFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	accounts := []string{"account-1", "account-2", "account-3"}

	notifications := mocks.NewMockNotificationStore(ctl)
	citizens := mocks.NewMockCitizenDirectory(ctl)
	center := mocks.NewMockNotificationCenter(ctl)

	citizens.EXPECT().ListCitizenAccountNumbers().Return(accounts, nil).Times(1)
	for _, a := range accounts {
		citizens.EXPECT().DeviceTokens(a).Return([]string{a + "-token"}, nil).Times(1)
	}

	// delivery to account-2 fails; every citizen still gets a record
	center.EXPECT().NotifyCitizen(gomock.Any(), []string{"account-1-token"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(1)
	center.EXPECT().NotifyCitizen(gomock.Any(), []string{"account-2-token"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&fcm.DeliveryError{Reason: "unreachable"}).Times(1)
	center.EXPECT().NotifyCitizen(gomock.Any(), []string{"account-3-token"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(1)

	notifications.EXPECT().CreateNotification(gomock.Any()).Return("id", nil).Times(len(accounts))

	d := hotspot.NewDispatcher(notifications, citizens, center, testCooldown, "en")
	err := d.NotifyAll(schema.NotificationTypeAnnouncement, "Lockdown update", "New guidelines are in effect")

	assert.NoError(t, err)
}
