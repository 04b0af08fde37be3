package handlers

import (
	"net/http"

	bookingRepo "stayhub/database/repository/booking"
	"stayhub/middleware"
	"stayhub/models"
	"stayhub/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle and listing endpoints.
type BookingHandler struct {
	Engine   booking.BookingEngine
	Bookings bookingRepo.BookingRepository
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(engine booking.BookingEngine, repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Engine: engine, Bookings: repo}
}

// Create reserves a stay for the authenticated guest.
func (h *BookingHandler) Create(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bkg, err := h.Engine.Reserve(middleware.ActorID(c), input)
	if err != nil {
		c.JSON(statusForEngineError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bkg)
}

// Quote returns the price breakdown for a candidate stay without
// creating a booking.
func (h *BookingHandler) Quote(c *gin.Context) {
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if checkIn == "" || checkOut == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn and checkOut are required"})
		return
	}

	breakdown, err := h.Engine.Quote(c.Param("id"), checkIn, checkOut)
	if err != nil {
		c.JSON(statusForEngineError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// Get returns a booking visible to the caller.
func (h *BookingHandler) Get(c *gin.Context) {
	bkg, err := h.Engine.GetBooking(c.Param("id"), middleware.ActorID(c))
	if err != nil {
		c.JSON(statusForEngineError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bkg)
}

// Cancel cancels a booking on behalf of its guest or host.
func (h *BookingHandler) Cancel(c *gin.Context) {
	bkg, err := h.Engine.Cancel(c.Param("id"), middleware.ActorID(c))
	if err != nil {
		c.JSON(statusForEngineError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bkg)
}

// Confirm confirms a pending booking (host only).
func (h *BookingHandler) Confirm(c *gin.Context) {
	bkg, err := h.Engine.Confirm(c.Param("id"), middleware.ActorID(c))
	if err != nil {
		c.JSON(statusForEngineError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bkg)
}

// List returns the caller's bookings, newest first. role=host switches
// to the bookings across the caller's properties.
func (h *BookingHandler) List(c *gin.Context) {
	var params struct {
		Role  string `form:"role"`
		Page  int    `form:"page,default=1"`
		Limit int    `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	actorID := middleware.ActorID(c)
	var (
		bookings []models.Booking
		total    int64
		err      error
	)
	if params.Role == "host" {
		bookings, total, err = h.Bookings.ListByHost(actorID, params.Page, params.Limit)
	} else {
		bookings, total, err = h.Bookings.ListByGuest(actorID, params.Page, params.Limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"pageInfo": models.NewPageInfo(params.Page, params.Limit, total),
	})
}
