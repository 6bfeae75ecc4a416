package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solveme-app/solveme-api/match"
	"github.com/solveme-app/solveme-api/store"
)

// outcomeStatus maps a matching outcome to an http status. Domain outcomes
// are 200s; only malformed input and unknown bubbles leave that band.
func outcomeStatus(outcome *match.Outcome) int {
	switch outcome.Reason {
	case match.ReasonMissingParam:
		return http.StatusBadRequest
	case match.ReasonBubbleNotFound, match.ReasonSolverNotFound:
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

// findSolver is the API a waiting requester polls to auto-assign a nearby
// wait-mode solver to their bubble
func (s *Server) findSolver(c *gin.Context) {
	var params struct {
		BubbleID string `json:"bubbleId"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	outcome, err := s.coordinator.AssignSolver(params.BubbleID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(outcomeStatus(outcome), outcome)
}

// solverAccept is the API for a solver explicitly taking a bubble. The
// solver identity comes from the token, never the request body.
func (s *Server) solverAccept(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		BubbleID string `json:"bubbleId"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	outcome, err := s.coordinator.SolverAccept(params.BubbleID, requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(outcomeStatus(outcome), outcome)
}

// matchStatus is the API a requester polls while waiting: MATCHED with the
// solver profile, SEARCHING, or a derived TIMEOUT
func (s *Server) matchStatus(c *gin.Context) {
	bubbleID := c.Param("bubbleID")

	view, err := s.coordinator.Status(bubbleID)
	if err != nil {
		if err == store.ErrBubbleNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorBubbleNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
