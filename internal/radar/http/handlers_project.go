package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/radar-hub/techradar-backend/internal/radar/domain"
)

func (h *Handler) createProject(c *gin.Context) {
	var in domain.CreateProjectInput
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p := h.svc.CreateProject(in)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.ListProjects()})
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetProject(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in domain.UpdateProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.UpdateProject(id, in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// createLink stores a technology-project association. The boundary only
// requires both ids to be present; whether they resolve to live entities is
// deliberately not checked (see the repository contract).
func (h *Handler) createLink(c *gin.Context) {
	var in domain.CreateTechnologyProjectInput
	if err := c.ShouldBindJSON(&in); err != nil || in.TechnologyID == 0 || in.ProjectID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	l := h.svc.LinkTechnologyToProject(in)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "link": l})
}

func (h *Handler) listLinks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "links": h.svc.ListLinks()})
}

func (h *Handler) getLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	l, err := h.svc.GetLink(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "link": l})
}

func (h *Handler) updateLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in domain.UpdateTechnologyProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	l, err := h.svc.UpdateLink(id, in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "link": l})
}
