package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/Domenick1991/homestay/internal/service/reviews"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewUseCase is a mock implementation of reviews.ReviewUseCase
type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) CreateReview(ctx context.Context, input reviews.CreateReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewUseCase) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.ReviewWithReviewer, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]domain.ReviewWithReviewer), args.Error(1)
}

func TestReviewHandler_create(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	listingID := uuid.New()
	reviewerID := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: listingID.String()}}

	body, _ := json.Marshal(gin.H{
		"reviewer_id": reviewerID.String(),
		"rating":      5,
		"comment":     "Amazing location and the host was very responsive.",
	})
	c.Request = httptest.NewRequest("POST", "/listings/"+listingID.String()+"/reviews", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	expectedInput := reviews.CreateReviewInput{
		ListingID:  listingID,
		ReviewerID: reviewerID,
		Rating:     5,
		Comment:    "Amazing location and the host was very responsive.",
	}
	created := &domain.Review{
		ID:         uuid.New(),
		ListingID:  listingID,
		ReviewerID: reviewerID,
		Rating:     5,
		Comment:    "Amazing location and the host was very responsive.",
		CreatedAt:  time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC),
	}
	mockService.On("CreateReview", c.Request.Context(), expectedInput).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response reviewResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, created.ID.String(), response.ReviewID)
	assert.Equal(t, 5, response.Rating)
	assert.Equal(t, "2026-05-10T09:30:00Z", response.CreatedAt)

	mockService.AssertExpectations(t)
}

func TestReviewHandler_create_Duplicate(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	listingID := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: listingID.String()}}

	body, _ := json.Marshal(gin.H{
		"reviewer_id": uuid.New().String(),
		"rating":      4,
		"comment":     "Great place to stay!",
	})
	c.Request = httptest.NewRequest("POST", "/listings/"+listingID.String()+"/reviews", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateReview", c.Request.Context(), mock.AnythingOfType("reviews.CreateReviewInput")).
		Return(nil, domain.NewValidationError(domain.CodeDuplicateReview, "reviewer_id", "reviewer already reviewed this listing"))

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestReviewHandler_create_InvalidRating(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	listingID := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: listingID.String()}}

	body, _ := json.Marshal(gin.H{
		"reviewer_id": uuid.New().String(),
		"rating":      6,
		"comment":     "Too good to be true.",
	})
	c.Request = httptest.NewRequest("POST", "/listings/"+listingID.String()+"/reviews", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateReview", c.Request.Context(), mock.AnythingOfType("reviews.CreateReviewInput")).
		Return(nil, domain.NewValidationError(domain.CodeInvalidRating, "rating", "rating must be between 1 and 5"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Errors map[string]string `json:"errors"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "rating must be between 1 and 5", response.Errors["rating"])

	mockService.AssertExpectations(t)
}

func TestReviewHandler_list(t *testing.T) {
	mockService := &MockReviewUseCase{}
	handler := NewReviewHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	listingID := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: listingID.String()}}
	c.Request = httptest.NewRequest("GET", "/listings/"+listingID.String()+"/reviews", nil)

	listed := []domain.ReviewWithReviewer{
		{
			Review:   domain.Review{ID: uuid.New(), ListingID: listingID, Rating: 4, Comment: "Clean, comfortable, and great amenities."},
			Reviewer: domain.User{ID: uuid.New(), Username: "tom_miller"},
		},
	}
	mockService.On("ListByListing", c.Request.Context(), listingID).Return(listed, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, float64(4), response[0]["rating"])

	mockService.AssertExpectations(t)
}
