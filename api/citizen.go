package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/data4life/data4life-api/schema"
	"github.com/data4life/data4life-api/store"
)

// accountRegister is the API to register a new citizen account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		MobileNumber string `json:"mobile_number" binding:"required"`
		FullName     string `json:"full_name" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	citizen, err := s.store.CreateCitizen(params.MobileNumber, params.FullName)
	if err == store.ErrCitizenTaken {
		abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": citizen,
	})
}

// accountDetail is the API to query the citizen account of the requester
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("citizen")
	citizen, ok := a.(*schema.Citizen)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": citizen,
	})
}

// registerDevice is the API to attach a push device token to the requester
func (s *Server) registerDevice(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Token    string `json:"token" binding:"required"`
		Platform string `json:"platform" binding:"required,oneof=ios android"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.store.RegisterDeviceToken(accountNumber, params.Token, params.Platform); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
