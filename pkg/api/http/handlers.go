package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	rootBody     = "Open Context Vault API"
	notFoundBody = "Not Found"

	contentTypeText = "text/plain"
	contentTypeJSON = "application/json"
)

// dispatch answers every request from the route table
func (s *Server) dispatch(c *gin.Context) {
	switch ResolveRoute(c.Request.URL.Path) {
	case RouteRoot:
		s.handleRoot(c)
	case RouteHealth:
		s.handleHealth(c)
	case RouteNotFound:
		s.handleNotFound(c)
	}
}

// handleRoot handles the informational root page
func (s *Server) handleRoot(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeText, []byte(rootBody))
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	body, err := json.Marshal(s.reporter.Report())
	if err != nil {
		s.logger.Error("failed to encode health report", zap.Error(err))
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, contentTypeJSON, body)
}

// handleNotFound handles every unmatched path
func (s *Server) handleNotFound(c *gin.Context) {
	c.String(http.StatusNotFound, notFoundBody)
}
