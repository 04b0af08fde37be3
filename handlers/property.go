package handlers

import (
	"net/http"

	"stayhub/middleware"
	"stayhub/models"
	"stayhub/services/property"

	"github.com/gin-gonic/gin"
)

// PropertyHandler exposes the listing CRUD and search endpoints.
type PropertyHandler struct {
	Service property.PropertyService
}

// NewPropertyHandler creates a PropertyHandler.
func NewPropertyHandler(svc property.PropertyService) *PropertyHandler {
	return &PropertyHandler{Service: svc}
}

// Create registers a new listing for the authenticated host.
func (h *PropertyHandler) Create(c *gin.Context) {
	var input models.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	prop, err := h.Service.Create(middleware.ActorID(c), input)
	if err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, prop)
}

// Get returns a single listing.
func (h *PropertyHandler) Get(c *gin.Context) {
	prop, err := h.Service.Get(c.Param("id"))
	if err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prop)
}

// Update applies a partial update to a listing owned by the caller.
func (h *PropertyHandler) Update(c *gin.Context) {
	var input models.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	prop, err := h.Service.Update(c.Param("id"), middleware.ActorID(c), input)
	if err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prop)
}

// Search lists published properties matching the query filters.
func (h *PropertyHandler) Search(c *gin.Context) {
	var params models.PropertySearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	props, page, err := h.Service.Search(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": props, "pageInfo": page})
}

// Delete removes a listing owned by the caller along with its calendar
// overrides.
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id"), middleware.ActorID(c)); err != nil {
		c.JSON(statusForPropertyError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "property deleted"})
}
