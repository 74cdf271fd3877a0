package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// radarView serves the assembled, render-ready radar structure.
func (h *Handler) radarView(c *gin.Context) {
	view := h.svc.RadarView(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "radar": view})
}
