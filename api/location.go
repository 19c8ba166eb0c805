package api

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/data4life/data4life-api/background"
)

// locationSync is the API for citizens to report their current position.
// The event is stored first and the proximity evaluation runs as a
// background job, so a slow push delivery never stalls the sync path.
func (s *Server) locationSync(c *gin.Context) {
	logger := log.WithField("api", "locationSync")
	accountNumber := c.GetString("requester")

	var params struct {
		Latitude  *float64 `json:"lat" binding:"required"`
		Longitude *float64 `json:"long" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if _, err := s.store.RecordCitizenLocation(accountNumber, *params.Latitude, *params.Longitude); shouldInterupt(err, c) {
		return
	}

	// a failed enqueue loses one proximity check, not the location event
	if _, err := s.backgroundEnqueuer.SendTask(&tasks.Signature{
		Name: background.TaskProximityCheck,
		Args: []tasks.Arg{
			{Type: "string", Value: accountNumber},
			{Type: "float64", Value: *params.Latitude},
			{Type: "float64", Value: *params.Longitude},
			{Type: "int64", Value: time.Now().Unix()},
		},
	}); err != nil {
		c.Error(err)
		logger.WithError(err).WithField("account_number", accountNumber).
			Error("fail to enqueue proximity check")
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
