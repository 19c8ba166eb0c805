package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/data4life/data4life-api/schema"
	"github.com/data4life/data4life-api/store"
	"github.com/data4life/data4life-api/store/mocks"
)

func TestListNotifications(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	records := []schema.CitizenPushNotification{
		{ID: "n-2", AccountNumber: testAccountNumber, Type: schema.NotificationTypeHotspotProximity, Timestamp: 2000},
		{ID: "n-1", AccountNumber: testAccountNumber, Type: schema.NotificationTypeAnnouncement, Timestamp: 1000},
	}

	m.EXPECT().ListNotifications(testAccountNumber, int64(defaultNotificationPageSize), gomock.Any()).
		Return(records, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requesterMiddleware(testAccountNumber))
	router.GET("/", s.listNotifications)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Notifications []schema.CitizenPushNotification `json:"notifications"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Notifications, 2)
	assert.Equal(t, "n-2", jResp.Notifications[0].ID, "newest record first")
}

func TestListNotificationsPagination(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().ListNotifications(testAccountNumber, int64(2), int64(5000)).
		Return([]schema.CitizenPushNotification{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requesterMiddleware(testAccountNumber))
	router.GET("/", s.listNotifications)

	req := httptest.NewRequest("GET", "/?limit=2&earlier=5000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestListNotificationsInvalidEarlier(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		mongoStore: mocks.NewMockMongoStore(ctl),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requesterMiddleware(testAccountNumber))
	router.GET("/", s.listNotifications)

	req := httptest.NewRequest("GET", "/?earlier=not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestUpdateNotificationStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().UpdateNotificationRead(testAccountNumber, "n-1", true).
		Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requesterMiddleware(testAccountNumber))
	router.PATCH("/:notificationID", s.updateNotificationStatus)

	req := httptest.NewRequest("PATCH", "/n-1", strings.NewReader(`{"status": "read"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateNotificationStatusUnknownRecord(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().UpdateNotificationRead(testAccountNumber, "missing", false).
		Return(store.ErrNotificationNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requesterMiddleware(testAccountNumber))
	router.PATCH("/:notificationID", s.updateNotificationStatus)

	req := httptest.NewRequest("PATCH", "/missing", strings.NewReader(`{"status": "unread"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorUnknownNotification.Code, jResp.Code)
}

func TestUpdateNotificationStatusInvalidValue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		mongoStore: mocks.NewMockMongoStore(ctl),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requesterMiddleware(testAccountNumber))
	router.PATCH("/:notificationID", s.updateNotificationStatus)

	req := httptest.NewRequest("PATCH", "/n-1", strings.NewReader(`{"status": "archived"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorCannotParseRequest.Code, jResp.Code)
}
