package fcm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSendSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key=test-key", r.Header.Get("Authorization"))

		var m downstreamMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, []string{"token-1", "token-2"}, m.RegistrationIDs)
		assert.Equal(t, "Hotspot proximity warning !", m.Notification.Title)
		assert.Equal(t, "HOTSPOT-PROXIMITY", m.Data["type"])

		_ = json.NewEncoder(w).Encode(Response{
			Success: 2,
			Results: []Result{{MessageID: "a"}, {MessageID: "b"}},
		})
	}))
	defer ts.Close()

	c := NewClient("test-key", ts.URL, ts.Client())
	resp, err := c.Send(context.Background(), []string{"token-1", "token-2"}, Notification{
		Title: "Hotspot proximity warning !",
		Body:  "There are disease hotspots nearby your location !",
	}, map[string]string{"type": "HOTSPOT-PROXIMITY"})

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Success)
	assert.Equal(t, 0, resp.Failure)
}

func TestSendProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := NewClient("bad-key", ts.URL, ts.Client())
	_, err := c.Send(context.Background(), []string{"token-1"}, Notification{}, nil)

	assert.Error(t, err)
	var delivery *DeliveryError
	assert.True(t, errors.As(err, &delivery), "expected a DeliveryError")
}

func TestSendTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient("test-key", ts.URL, ts.Client())
	_, err := c.Send(ctx, []string{"token-1"}, Notification{}, nil)

	var delivery *DeliveryError
	assert.True(t, errors.As(err, &delivery), "expected a DeliveryError")
}

func TestSendNoTokens(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := NewClient("test-key", ts.URL, ts.Client())
	resp, err := c.Send(context.Background(), nil, Notification{}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Success)
	assert.False(t, called, "no request expected for an empty token set")
}

func TestSendEmptyServerKey(t *testing.T) {
	c := NewClient("", "", http.DefaultClient)
	_, err := c.Send(context.Background(), []string{"token-1"}, Notification{}, nil)
	assert.Error(t, err)
}
