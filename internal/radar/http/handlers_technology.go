package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

func (h *Handler) createTechnology(c *gin.Context) {
	var in domain.CreateTechnologyInput
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	t := h.svc.CreateTechnology(c.Request.Context(), in)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "technology": t})
}

// listTechnologies returns every technology, or the search result when the
// optional q parameter is present. A blank q means "everything" by contract.
func (h *Handler) listTechnologies(c *gin.Context) {
	q := c.Query("q")
	var items []domain.Technology
	if strings.TrimSpace(q) == "" {
		items = h.svc.ListTechnologies()
	} else {
		items = h.svc.SearchTechnologies(q)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "technologies": items})
}

func (h *Handler) getTechnology(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.svc.GetTechnology(id)
	if err != nil {
		if errors.Is(err, domain.ErrTechnologyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "technology not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "technology": t})
}

func (h *Handler) updateTechnology(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in domain.UpdateTechnologyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	t, err := h.svc.UpdateTechnology(c.Request.Context(), id, in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "technology not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "technology": t})
}
