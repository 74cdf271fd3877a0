package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

// Quadrant and ring handlers. Both axes share the same shape and the same
// lenient contract: attributes are mutable, identity is not.

func (h *Handler) createQuadrant(c *gin.Context) {
	var in domain.CreateQuadrantInput
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	q := h.svc.CreateQuadrant(c.Request.Context(), in)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "quadrant": q})
}

func (h *Handler) listQuadrants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "quadrants": h.svc.ListQuadrants()})
}

func (h *Handler) getQuadrant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	q, err := h.svc.GetQuadrant(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "quadrant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "quadrant": q})
}

func (h *Handler) updateQuadrant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in domain.UpdateQuadrantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	q, err := h.svc.UpdateQuadrant(c.Request.Context(), id, in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "quadrant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "quadrant": q})
}

func (h *Handler) createRing(c *gin.Context) {
	var in domain.CreateRingInput
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ring := h.svc.CreateRing(c.Request.Context(), in)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "ring": ring})
}

func (h *Handler) listRings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "rings": h.svc.ListRings()})
}

func (h *Handler) getRing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ring, err := h.svc.GetRing(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "ring not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "ring": ring})
}

func (h *Handler) updateRing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in domain.UpdateRingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	ring, err := h.svc.UpdateRing(c.Request.Context(), id, in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "ring not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "ring": ring})
}
