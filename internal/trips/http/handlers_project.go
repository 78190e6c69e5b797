package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "kind": "not_found", "error": "project not found"})
		return 0, false
	}
	return id, true
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	create := domain.CreateProjectRequest{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
	}
	for _, in := range req.Places {
		create.Places = append(create.Places, domain.PlaceInput{ArtworkID: in.ArtworkID, Notes: in.Notes})
	}

	p, err := h.projects.Create(c.Request.Context(), create)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) listProjects(c *gin.Context) {
	opts := domain.ListOptions{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	items, err := h.projects.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req updateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	upd := domain.UpdateProjectRequest{Name: req.Name}
	if req.Description.set {
		if req.Description.value == nil {
			upd.ClearDescription = true
		} else {
			upd.Description = req.Description.value
		}
	}
	if req.StartDate.set {
		if req.StartDate.value == nil {
			upd.ClearStartDate = true
		} else {
			upd.StartDate = req.StartDate.value
		}
	}

	p, err := h.projects.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
