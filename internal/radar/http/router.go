package http

import "github.com/gin-gonic/gin"

// Register attaches the radar catalog routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/technologies", h.listTechnologies)
	rg.GET("/technologies/:id", h.getTechnology)
	rg.POST("/technologies", h.createTechnology)
	rg.PATCH("/technologies/:id", h.updateTechnology)

	rg.GET("/quadrants", h.listQuadrants)
	rg.GET("/quadrants/:id", h.getQuadrant)
	rg.POST("/quadrants", h.createQuadrant)
	rg.PATCH("/quadrants/:id", h.updateQuadrant)

	rg.GET("/rings", h.listRings)
	rg.GET("/rings/:id", h.getRing)
	rg.POST("/rings", h.createRing)
	rg.PATCH("/rings/:id", h.updateRing)

	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/:id", h.getProject)
	rg.POST("/projects", h.createProject)
	rg.PATCH("/projects/:id", h.updateProject)

	rg.GET("/technology-project-links", h.listLinks)
	rg.GET("/technology-project-links/:id", h.getLink)
	rg.POST("/technology-project-links", h.createLink)
	rg.PATCH("/technology-project-links/:id", h.updateLink)

	rg.GET("/radar", h.radarView)
}
