package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/data4life/data4life-api/store"
)

const defaultNotificationPageSize = 100

// listNotifications is the API to page through the requester's notification
// records, newest first. `earlier` is an exclusive unix-time upper bound for
// pagination.
func (s *Server) listNotifications(c *gin.Context) {
	accountNumber := c.GetString("requester")

	limit := int64(defaultNotificationPageSize)
	if l, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && l > 0 {
		limit = l
	}

	earlier := time.Now().Unix() + 1
	if e := c.Query("earlier"); e != "" {
		v, err := strconv.ParseInt(e, 10, 64)
		if err != nil || v <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		earlier = v
	}

	notifications, err := s.mongoStore.ListNotifications(accountNumber, limit, earlier)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
	})
}

// updateNotificationStatus is the API to flip the read flag of one of the
// requester's notification records
func (s *Server) updateNotificationStatus(c *gin.Context) {
	accountNumber := c.GetString("requester")
	notificationID := c.Param("notificationID")

	var params struct {
		Status string `json:"status" binding:"required,oneof=read unread"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	err := s.mongoStore.UpdateNotificationRead(accountNumber, notificationID, params.Status == "read")
	if err == store.ErrNotificationNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownNotification)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
