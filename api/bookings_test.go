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
	"github.com/Domenick1991/homestay/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBookingDetail(ctx context.Context, id uuid.UUID) (*booking.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingDetail), args.Error(1)
}

func (m *MockBookingUseCase) ConfirmBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.BookingSummary, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]domain.BookingSummary), args.Error(1)
}

func (m *MockBookingUseCase) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.BookingSummary, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).([]domain.BookingSummary), args.Error(1)
}

func (m *MockBookingUseCase) CompleteFinishedBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func sampleBookingDetail(b *domain.Booking) *booking.BookingDetail {
	return &booking.BookingDetail{
		Booking: *b,
		Listing: domain.ListingDetail{
			Listing: domain.Listing{ID: b.ListingID, Title: "Cozy Downtown Apartment", PricePerNightCents: 12000},
			Host:    domain.User{ID: uuid.New(), Username: "john_doe"},
			Reviews: []domain.ReviewWithReviewer{},
		},
		Guest: domain.User{ID: b.GuestID, Username: "jane_smith"},
	}
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	listingID := uuid.New()
	guestID := uuid.New()
	body, _ := json.Marshal(gin.H{
		"listing_id":     listingID.String(),
		"guest_id":       guestID.String(),
		"check_in_date":  "2026-09-20",
		"check_out_date": "2026-09-23",
		"num_guests":     2,
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Booking{
		ID:              uuid.New(),
		ListingID:       listingID,
		GuestID:         guestID,
		CheckIn:         time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2026, 9, 23, 0, 0, 0, 0, time.UTC),
		NumGuests:       2,
		TotalPriceCents: 36000,
		Status:          domain.BookingStatusPending,
	}

	expectedInput := booking.CreateBookingInput{
		ListingID: listingID,
		GuestID:   guestID,
		CheckIn:   time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 9, 23, 0, 0, 0, 0, time.UTC),
		NumGuests: 2,
	}
	mockService.On("CreateBooking", c.Request.Context(), expectedInput).Return(created, nil)
	mockService.On("GetBookingDetail", c.Request.Context(), created.ID).Return(sampleBookingDetail(created), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, created.ID.String(), response["booking_id"])
	assert.Equal(t, "2026-09-20", response["check_in_date"])
	assert.Equal(t, "360.00", response["total_price"])
	assert.Equal(t, "pending", response["status"])
	assert.Equal(t, float64(3), response["duration_days"])

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_ValidationError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(gin.H{
		"listing_id":     uuid.New().String(),
		"guest_id":       uuid.New().String(),
		"check_in_date":  "2020-01-01",
		"check_out_date": "2020-01-05",
		"num_guests":     2,
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateBooking", c.Request.Context(), mock.AnythingOfType("booking.CreateBookingInput")).
		Return(nil, domain.NewValidationError(domain.CodePastCheckIn, "check_in_date", "check-in date cannot be in the past"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Errors map[string]string `json:"errors"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "check-in date cannot be in the past", response.Errors["check_in_date"])

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_UnknownListing(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(gin.H{
		"listing_id":     uuid.New().String(),
		"guest_id":       uuid.New().String(),
		"check_in_date":  "2026-09-20",
		"check_out_date": "2026-09-23",
		"num_guests":     2,
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateBooking", c.Request.Context(), mock.AnythingOfType("booking.CreateBookingInput")).
		Return(nil, domain.NewValidationError(domain.CodeListingNotFound, "listing_id", "listing does not exist"))

	handler.create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_BadDate(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(gin.H{
		"listing_id":     uuid.New().String(),
		"guest_id":       uuid.New().String(),
		"check_in_date":  "20/09/2026",
		"check_out_date": "2026-09-23",
		"num_guests":     2,
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_confirm(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("PUT", "/bookings/"+id.String()+"/confirm", nil)

	confirmed := &domain.Booking{ID: id, Status: domain.BookingStatusConfirmed}
	mockService.On("ConfirmBooking", c.Request.Context(), id).Return(confirmed, nil)

	handler.confirm(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusConfirmed), response["status"])

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("PUT", "/bookings/"+id.String()+"/cancel", nil)

	canceled := &domain.Booking{ID: id, Status: domain.BookingStatusCanceled}
	mockService.On("CancelBooking", c.Request.Context(), id).Return(canceled, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusCanceled), response["status"])

	mockService.AssertExpectations(t)
}

func TestBookingHandler_get_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest("GET", "/bookings/"+id.String(), nil)

	mockService.On("GetBookingDetail", c.Request.Context(), id).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_listByGuest(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	guestID := uuid.New()
	c.Request = httptest.NewRequest("GET", "/bookings?guest_id="+guestID.String(), nil)

	summaries := []domain.BookingSummary{
		{BookingID: uuid.New(), GuestName: "bob_wilson", Status: domain.BookingStatusPending},
	}
	mockService.On("ListByGuest", c.Request.Context(), guestID).Return(summaries, nil)

	handler.listByGuest(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "bob_wilson", response[0]["guest_name"])

	mockService.AssertExpectations(t)
}

func TestBookingHandler_listByGuest_MissingParam(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings", nil)

	handler.listByGuest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListByGuest")
}

func TestBookingHandler_listByListing(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	listingID := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: listingID.String()}}
	c.Request = httptest.NewRequest("GET", "/listings/"+listingID.String()+"/bookings", nil)

	summaries := []domain.BookingSummary{
		{
			BookingID:       uuid.New(),
			ListingTitle:    "Cozy Downtown Apartment",
			GuestName:       "jane_smith",
			CheckIn:         time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
			CheckOut:        time.Date(2026, 9, 23, 0, 0, 0, 0, time.UTC),
			Status:          domain.BookingStatusConfirmed,
			TotalPriceCents: 36000,
		},
	}
	mockService.On("ListByListing", c.Request.Context(), listingID).Return(summaries, nil)

	handler.listByListing(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "Cozy Downtown Apartment", response[0]["listing_title"])
	assert.Equal(t, "360.00", response[0]["total_price"])

	mockService.AssertExpectations(t)
}
