package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solveme-app/solveme-api/match"
	"github.com/solveme-app/solveme-api/schema"
	"github.com/solveme-app/solveme-api/store"
	"github.com/solveme-app/solveme-api/utils"
)

// defaultNearbyRadiusMeters bounds the nearby listing when the client does
// not pass a radius
const defaultNearbyRadiusMeters = 70

// createBubble is the API for posting a new help request. The priority is
// labeled by the text classifier; when the classifier is unreachable the
// bubble still goes out as MEDIUM.
func (s *Server) createBubble(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Title            string           `json:"title"`
		Description      string           `json:"description"`
		ExpiresInMinutes int              `json:"expiresInMinutes"`
		Location         *schema.Location `json:"location"`
		Category         string           `json:"category"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || params.Description == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	priority := schema.PriorityMedium
	if result, err := s.classifier.Classify(params.Description); err == nil {
		priority = result.Priority
	} else {
		log.WithError(err).Warn("classify priority, fallback to MEDIUM")
	}

	category := params.Category
	if category == "" {
		category = schema.CategoryOther
	}

	place := ""
	if s.geoInfo != nil && params.Location != nil {
		if results, err := s.geoInfo.Get(*params.Location); err == nil {
			place = utils.ReadPlaceName(results)
		} else {
			c.Error(err)
		}
	}

	bubble, err := s.mongoStore.CreateBubble(store.BubbleParams{
		Title:            params.Title,
		Description:      params.Description,
		RequesterID:      requester,
		Location:         params.Location,
		Place:            place,
		Priority:         priority,
		Category:         category,
		ExpiresInMinutes: params.ExpiresInMinutes,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.stats.AddRequest(requester); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusOK, bubble)
}

// listBubbles is the API for the open-bubble feed: priority first, closest
// to expiry first, top 20
func (s *Server) listBubbles(c *gin.Context) {
	bubbles, err := s.mongoStore.ListOpenBubbles(0)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, match.RankOpenBubbles(bubbles, time.Now()))
}

// nearbyBubbles is the API for the map view: open bubbles within a radius
// of the given point, annotated with their distance
func (s *Server) nearbyBubbles(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	radius := float64(defaultNearbyRadiusMeters)
	if q := c.Query("radiusMeters"); q != "" {
		radius, err = strconv.ParseFloat(q, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}

	bubbles, err := s.mongoStore.ListOpenBubbles(0)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	center := schema.Location{Latitude: lat, Longitude: lon}
	c.JSON(http.StatusOK, match.RankNearbyBubbles(bubbles, center, radius, time.Now()))
}

// activeSolvers is the API behind the radar view: eligible solvers around
// a bubble, closest first
func (s *Server) activeSolvers(c *gin.Context) {
	bubbleID := c.Query("bubbleId")

	radius := float64(0)
	if q := c.Query("radiusMeters"); q != "" {
		r, err := strconv.ParseFloat(q, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		radius = r
	}

	solvers, err := s.coordinator.ActiveSolversNear(bubbleID, radius)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, solvers)
}
