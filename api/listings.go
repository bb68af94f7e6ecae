package api

import (
	"net/http"

	"github.com/Domenick1991/homestay/internal/presenter"
	"github.com/Domenick1991/homestay/internal/service/listings"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	service listings.ListingUseCase
}

type listingRequest struct {
	HostID        string `json:"host_id" binding:"required,uuid"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Location      string `json:"location" binding:"required"`
	PricePerNight string `json:"price_per_night" binding:"required"`
	MaxGuests     int    `json:"max_guests" binding:"required,min=1"`
	Bedrooms      int    `json:"bedrooms" binding:"min=0"`
	Bathrooms     int    `json:"bathrooms" binding:"min=0"`
	IsAvailable   *bool  `json:"is_available"`
}

func NewListingHandler(service listings.ListingUseCase) *ListingHandler {
	return &ListingHandler{service: service}
}

func (h *ListingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ListingHandler) toInput(c *gin.Context) (listings.ListingInput, bool) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return listings.ListingInput{}, false
	}

	hostID, err := uuid.Parse(req.HostID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"host_id": "invalid host ID"}})
		return listings.ListingInput{}, false
	}

	priceCents, err := presenter.ParseCents(req.PricePerNight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"price_per_night": err.Error()}})
		return listings.ListingInput{}, false
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	return listings.ListingInput{
		HostID:             hostID,
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		PricePerNightCents: priceCents,
		MaxGuests:          req.MaxGuests,
		Bedrooms:           req.Bedrooms,
		Bathrooms:          req.Bathrooms,
		IsAvailable:        available,
	}, true
}

func (h *ListingHandler) create(c *gin.Context) {
	input, ok := h.toInput(c)
	if !ok {
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), listing.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.PresentListingDetail(*detail))
}

func (h *ListingHandler) list(c *gin.Context) {
	summaries, err := h.service.ListSummaries(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.PresentListingSummaries(summaries))
}

func (h *ListingHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.PresentListingDetail(*detail))
}

func (h *ListingHandler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	input, ok := h.toInput(c)
	if !ok {
		return
	}

	if _, err := h.service.UpdateListing(c.Request.Context(), id, input); err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.PresentListingDetail(*detail))
}

func (h *ListingHandler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.DeleteListing(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
