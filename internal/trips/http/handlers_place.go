package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/domain"
)

func placeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("place_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "kind": "not_found", "error": "place not found"})
		return 0, false
	}
	return id, true
}

func (h *Handler) addPlace(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}

	var req createPlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	// A missing artwork_id reaches the service as zero; the service orders
	// the project existence check ahead of payload validation.
	var artworkID int64
	if req.ArtworkID != nil {
		artworkID = *req.ArtworkID
	}

	place, err := h.places.Add(c.Request.Context(), pid, artworkID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "place": place})
}

func (h *Handler) listPlaces(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}
	items, err := h.places.List(c.Request.Context(), pid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "places": items})
}

func (h *Handler) getPlace(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}
	plid, ok := placeID(c)
	if !ok {
		return
	}
	place, err := h.places.Get(c.Request.Context(), pid, plid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "place": place})
}

func (h *Handler) updatePlace(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}
	plid, ok := placeID(c)
	if !ok {
		return
	}

	var req updatePlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	place, err := h.places.Update(c.Request.Context(), pid, plid, domain.UpdatePlaceRequest{
		Notes:   req.Notes,
		Visited: req.Visited,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "place": place})
}

func (h *Handler) deletePlace(c *gin.Context) {
	pid, ok := projectID(c)
	if !ok {
		return
	}
	plid, ok := placeID(c)
	if !ok {
		return
	}
	if err := h.places.Delete(c.Request.Context(), pid, plid); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
