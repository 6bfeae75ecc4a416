package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solveme-app/solveme-api/schema"
	"github.com/solveme-app/solveme-api/store"
)

// toggleWait is the API behind the wait-mode switch. Turning it on opts
// the solver in to passive auto-assignment; turning it off withdraws them
// from the pool entirely.
func (s *Server) toggleWait(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Wait     *bool            `json:"wait"`
		Location *schema.Location `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Wait == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	user, err := s.mongoStore.SetWaitMode(requester, *params.Wait, params.Location)
	if err != nil {
		if err == store.ErrSolverNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"wait_mode": user.WaitMode,
		"is_ready":  user.IsReady,
		"active":    user.Active,
	})
}

// setReady is the API behind the ready switch, the base opt-in to show up
// as a solver at all
func (s *Server) setReady(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		IsReady *bool `json:"is_ready"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.IsReady == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.SetReady(requester, *params.IsReady); err != nil {
		if err == store.ErrSolverNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// heartbeat keeps a session marked active while the mini-app is open
func (s *Server) heartbeat(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.mongoStore.TouchHeartbeat(requester); err != nil {
		if err == store.ErrSolverNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
