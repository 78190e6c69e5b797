package http

import "github.com/gin-gonic/gin"

// Register attaches project and nested place routes to the given group.
func Register(rg *gin.RouterGroup, projects ProjectsService, places PlacesService) {
	h := &Handler{projects: projects, places: places}

	rg.POST("", h.createProject)
	rg.GET("", h.listProjects)
	rg.GET("/:id", h.getProject)
	rg.PATCH("/:id", h.updateProject)
	rg.DELETE("/:id", h.deleteProject)

	rg.POST("/:id/places", h.addPlace)
	rg.GET("/:id/places", h.listPlaces)
	rg.GET("/:id/places/:place_id", h.getPlace)
	rg.PATCH("/:id/places/:place_id", h.updatePlace)
	rg.DELETE("/:id/places/:place_id", h.deletePlace)
}
