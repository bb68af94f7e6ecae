package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/homestay/internal/presenter"
	"github.com/Domenick1991/homestay/internal/service/reviews"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	service reviews.ReviewUseCase
}

type createReviewRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required,uuid"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

type reviewResponse struct {
	ReviewID  string `json:"review_id"`
	ListingID string `json:"listing_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

func NewReviewHandler(service reviews.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Register attaches review routes under /listings/:id.
func (h *ReviewHandler) Register(listingRouter *gin.RouterGroup) {
	listingRouter.POST("/:id/reviews", h.create)
	listingRouter.GET("/:id/reviews", h.list)
}

func (h *ReviewHandler) create(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewerID, err := uuid.Parse(req.ReviewerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"reviewer_id": "invalid reviewer ID"}})
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), reviews.CreateReviewInput{
		ListingID:  listingID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reviewResponse{
		ReviewID:  review.ID.String(),
		ListingID: review.ListingID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	})
}

func (h *ReviewHandler) list(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	listed, err := h.service.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		writeError(c, err)
		return
	}

	records := make([]presenter.ReviewRecord, 0, len(listed))
	for _, r := range listed {
		records = append(records, presenter.PresentReview(r))
	}
	c.JSON(http.StatusOK, records)
}
