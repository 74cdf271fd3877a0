package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/radar-hub/techradar-backend/internal/radar/service"
)

// Handler serves the radar catalog API.
type Handler struct {
	svc *service.RadarService
}

// New creates a Handler backed by the given service.
func New(svc *service.RadarService) *Handler {
	return &Handler{svc: svc}
}

// parseID reads the :id path parameter. A malformed id is rejected here so
// the store only ever sees numeric ids.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return 0, false
	}
	return id, true
}
