package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// todayQuests returns the caller's quest sheet of the day, creating it on
// first access
func (s *Server) todayQuests(c *gin.Context) {
	requester := c.GetString("requester")

	quests, err := s.mongoStore.GetOrCreateTodayQuests(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, quests)
}
