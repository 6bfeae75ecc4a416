package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solveme-app/solveme-api/schema"
	"github.com/solveme-app/solveme-api/store"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// updateGeoPositionMiddleware is a middleware to store the location fix of
// every api request that carries a Geo-Position header. This keeps solver
// positions fresh without a dedicated location endpoint round trip.
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	gp := c.GetHeader("Geo-Position")
	lineID := c.GetString("requester")

	if gp != "" && lineID != "" {
		if lat, long, err := parseGeoPosition(gp); err == nil {
			loc := schema.Location{Latitude: lat, Longitude: long}
			if err := s.mongoStore.UpdateSolverLocation(lineID, loc); err != nil && err != store.ErrSolverNotFound {
				c.Error(err)
			}
		} else {
			c.Error(err)
		}
	}
	c.Next()
}
