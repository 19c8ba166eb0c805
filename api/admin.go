package api

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/data4life/data4life-api/background"
	"github.com/data4life/data4life-api/schema"
	"github.com/data4life/data4life-api/store"
)

// sendNotificationToCitizen is the admin API to push a notification to a
// single citizen, addressed by mobile number. The cooldown window does not
// apply to admin-initiated notifications.
func (s *Server) sendNotificationToCitizen(c *gin.Context) {
	var params struct {
		MobileNumber string `json:"mobile_number" binding:"required"`
		Type         string `json:"type" binding:"required"`
		Title        string `json:"title" binding:"required"`
		Body         string `json:"body" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !schema.ValidNotificationType(schema.NotificationType(params.Type)) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidNotificationType)
		return
	}

	citizen, err := s.store.GetCitizenByMobile(params.MobileNumber)
	if err == store.ErrCitizenNotFound {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCitizen)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	err = s.dispatcher.NotifyOne(citizen.AccountNumber,
		schema.NotificationType(params.Type), params.Title, params.Body)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Push notification send successfully !",
	})
}

// sendNotificationToAllCitizens is the admin API to broadcast a notification
// to every registered citizen. The broadcast runs as a background job and is
// best effort per citizen.
func (s *Server) sendNotificationToAllCitizens(c *gin.Context) {
	var params struct {
		Type  string `json:"type" binding:"required"`
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !schema.ValidNotificationType(schema.NotificationType(params.Type)) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidNotificationType)
		return
	}

	if _, err := s.backgroundEnqueuer.SendTask(&tasks.Signature{
		Name: background.TaskBroadcastNotification,
		Args: []tasks.Arg{
			{Type: "string", Value: params.Type},
			{Type: "string", Value: params.Title},
			{Type: "string", Value: params.Body},
		},
	}); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "Push notification send successfully !",
	})
}

// createPatientLocations is the admin API to upload patient historic
// locations, one or many at a time
func (s *Server) createPatientLocations(c *gin.Context) {
	var params struct {
		Locations []struct {
			Latitude          *float64 `json:"lat" binding:"required"`
			Longitude         *float64 `json:"long" binding:"required"`
			RecordedAt        int64    `json:"recorded_at" binding:"required"`
			InfectionStatusID string   `json:"infection_status_id" binding:"required"`
		} `json:"locations" binding:"required,min=1,dive"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	ids := make([]string, 0, len(params.Locations))
	for _, l := range params.Locations {
		id, err := s.store.RecordPatientLocation(*l.Latitude, *l.Longitude,
			time.Unix(l.RecordedAt, 0), l.InfectionStatusID)
		if err == store.ErrInvalidReference {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownInfectionStatus)
			return
		} else if shouldInterupt(err, c) {
			return
		}
		ids = append(ids, id)
	}

	c.JSON(http.StatusOK, gin.H{
		"ids": ids,
	})
}

// createDisease is the admin API to register a disease
func (s *Server) createDisease(c *gin.Context) {
	var params struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	id, err := s.store.CreateDisease(params.Name)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// createInfectionStatus is the admin API to register an infection status
// under a disease
func (s *Server) createInfectionStatus(c *gin.Context) {
	diseaseID := c.Param("diseaseID")

	var params struct {
		InfectionStatus string `json:"infection_status" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	id, err := s.store.CreateInfectionStatus(diseaseID, params.InfectionStatus)
	if err == store.ErrInvalidReference {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownDisease)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
