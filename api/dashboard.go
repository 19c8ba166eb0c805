package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/data4life/data4life-api/schema"
)

func historicLocationRetention() time.Duration {
	return time.Duration(viper.GetInt64("hotspot.historic_location_expiry_in_seconds")) * time.Second
}

// mapData is the dashboard API returning all non-expired patient historic
// locations for map rendering
func (s *Server) mapData(c *gin.Context) {
	it, err := s.mongoStore.ActivePatientLocations(time.Now(), historicLocationRetention())
	if shouldInterupt(err, c) {
		return
	}
	defer it.Close()

	locations := make([]schema.PatientHistoricLocation, 0)
	for {
		l, err := it.Next()
		if shouldInterupt(err, c) {
			return
		}
		if l == nil {
			break
		}
		locations = append(locations, *l)
	}

	c.JSON(http.StatusOK, gin.H{
		"map_data": locations,
	})
}

// stats is the dashboard API returning headline counters
func (s *Server) stats(c *gin.Context) {
	activeLocations, err := s.mongoStore.CountActivePatientLocations(time.Now(), historicLocationRetention())
	if shouldInterupt(err, c) {
		return
	}

	citizens, err := s.store.CountCitizens()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"active_patient_locations": activeLocations,
			"registered_citizens":      citizens,
		},
	})
}
