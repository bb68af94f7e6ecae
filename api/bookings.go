package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/homestay/internal/presenter"
	"github.com/Domenick1991/homestay/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	ListingID    string  `json:"listing_id" binding:"required,uuid"`
	GuestID      string  `json:"guest_id" binding:"required,uuid"`
	CheckInDate  string  `json:"check_in_date" binding:"required"`
	CheckOutDate string  `json:"check_out_date" binding:"required"`
	NumGuests    int     `json:"num_guests" binding:"required,min=1"`
	TotalPrice   *string `json:"total_price"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register wires the booking routes; listing-scoped booking lists hang
// off the listings group.
func (h *BookingHandler) Register(router, listingRouter *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.listByGuest)
	router.GET("/:id", h.get)
	router.PUT("/:id/confirm", h.confirm)
	router.PUT("/:id/cancel", h.cancel)
	listingRouter.GET("/:id/bookings", h.listByListing)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"listing_id": "invalid listing ID"}})
		return
	}
	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"guest_id": "invalid guest ID"}})
		return
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"check_in_date": "expected YYYY-MM-DD"}})
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"check_out_date": "expected YYYY-MM-DD"}})
		return
	}

	input := booking.CreateBookingInput{
		ListingID: listingID,
		GuestID:   guestID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		NumGuests: req.NumGuests,
	}
	if req.TotalPrice != nil {
		cents, err := presenter.ParseCents(*req.TotalPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"total_price": err.Error()}})
			return
		}
		input.TotalPriceCents = &cents
	}

	created, err := h.service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.service.GetBookingDetail(c.Request.Context(), created.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.PresentBookingDetail(*detail))
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	detail, err := h.service.GetBookingDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.PresentBookingDetail(*detail))
}

func (h *BookingHandler) confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	updated, err := h.service.ConfirmBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking_id": updated.ID.String(), "status": string(updated.Status)})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	updated, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking_id": updated.ID.String(), "status": string(updated.Status)})
}

func (h *BookingHandler) listByGuest(c *gin.Context) {
	guestID, err := uuid.Parse(c.Query("guest_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id query parameter is required"})
		return
	}

	summaries, err := h.service.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.PresentBookingSummaries(summaries))
}

func (h *BookingHandler) listByListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	summaries, err := h.service.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, presenter.PresentBookingSummaries(summaries))
}
