package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solveme-app/solveme-api/store"
)

// profileDetail returns the caller's own account, presence flags and
// lifetime stats included
func (s *Server) profileDetail(c *gin.Context) {
	requester := c.GetString("requester")

	user, err := s.mongoStore.GetSolver(requester)
	if err != nil {
		if err == store.ErrSolverNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
