package hotspot

import (
	"context"

	"github.com/data4life/data4life-api/external/fcm"
)

// FCMNotificationCenter delivers push messages through Firebase Cloud
// Messaging
type FCMNotificationCenter struct {
	client *fcm.Client
}

func NewFCMNotificationCenter(client *fcm.Client) *FCMNotificationCenter {
	return &FCMNotificationCenter{
		client: client,
	}
}

func (f *FCMNotificationCenter) NotifyCitizen(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	resp, err := f.client.Send(ctx, tokens, fcm.Notification{
		Title: title,
		Body:  body,
	}, data)
	if err != nil {
		return err
	}

	if resp.Failure > 0 && resp.Success == 0 && len(tokens) > 0 {
		return &fcm.DeliveryError{Reason: "all device tokens rejected"}
	}

	return nil
}
