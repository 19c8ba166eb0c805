package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix       = "fcm"
	defaultEndpoint = "https://fcm.googleapis.com/fcm/send"
)

var (
	errEmptyServerKey = fmt.Errorf("empty fcm server key")
)

// DeliveryError is a push provider failure: timeout, rejected request or a
// provider-side error. Callers absorb these at the dispatch boundary; they
// never indicate a problem with locally persisted state.
type DeliveryError struct {
	Reason string
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fcm delivery failed: %s: %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("fcm delivery failed: %s", e.Reason)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Notification is the user-visible part of a push message
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type downstreamMessage struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    Notification      `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

// Result is the per-token delivery outcome
type Result struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error"`
}

// Response is the provider's summary of one send call
type Response struct {
	Success int      `json:"success"`
	Failure int      `json:"failure"`
	Results []Result `json:"results"`
}

// Client talks to the FCM legacy HTTP API
type Client struct {
	serverKey  string
	endpoint   string
	httpClient *http.Client
}

func NewClient(serverKey, endpoint string, httpClient *http.Client) *Client {
	e := defaultEndpoint
	if endpoint != "" {
		e = endpoint
	}

	return &Client{
		serverKey:  serverKey,
		endpoint:   e,
		httpClient: httpClient,
	}
}

// Send delivers one push message to a set of device tokens. The per-token
// outcome is reported in the response; transport and provider failures are
// returned as *DeliveryError.
func (c *Client) Send(ctx context.Context, tokens []string, notification Notification, data map[string]string) (*Response, error) {
	if c.serverKey == "" {
		return nil, &DeliveryError{Reason: "misconfigured client", Err: errEmptyServerKey}
	}

	if len(tokens) == 0 {
		return &Response{}, nil
	}

	body, err := json.Marshal(downstreamMessage{
		RegistrationIDs: tokens,
		Notification:    notification,
		Data:            data,
	})
	if err != nil {
		return nil, &DeliveryError{Reason: "encode message", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &DeliveryError{Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &DeliveryError{Reason: "send request", Err: err}
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &DeliveryError{Reason: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &DeliveryError{
			Reason: fmt.Sprintf("provider returned status %d", resp.StatusCode),
		}
	}

	var r Response
	if err := json.Unmarshal(d, &r); err != nil {
		return nil, &DeliveryError{Reason: "decode response", Err: err}
	}

	if r.Failure > 0 {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"success": r.Success,
			"failure": r.Failure,
		}).Warn("partial push delivery")
	}

	return &r, nil
}
