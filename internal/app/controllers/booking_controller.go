package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/services"
	"github.com/akshayp/cetadvisor/internal/middleware"
)

// BookingController handles booking endpoints
type BookingController struct {
	bookingService *services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// CreateBooking books a counseling session
// @Summary Create booking
// @Description Validates the request, reserves a meeting link and confirms by email asynchronously
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.APIResponse{data=dto.BookingCreatedData} "Booking created"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Failure 502 {object} dto.APIResponse "Meeting link acquisition failed"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(ctx *gin.Context) {
	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	data, err := c.bookingService.CreateBooking(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// GetBookings lists all bookings
// @Summary List bookings
// @Description Returns all bookings ordered by meeting time descending
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Booking} "Bookings retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /admin/bookings [get]
func (c *BookingController) GetBookings(ctx *gin.Context) {
	bookings, err := c.bookingService.GetBookings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(bookings))
}

// GetBooking fetches a single booking
// @Summary Get booking
// @Description Returns one booking by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.APIResponse{data=models.Booking} "Booking retrieved"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Booking not found"
// @Router /admin/bookings/{id} [get]
func (c *BookingController) GetBooking(ctx *gin.Context) {
	booking, err := c.bookingService.GetBooking(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(booking))
}

// UpdateBookingStatus sets the lifecycle status of a booking
// @Summary Update booking status
// @Description Sets booking_status to one of scheduled, pending, confirmed, cancelled, completed
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Status updated"
// @Failure 400 {object} dto.APIResponse "Unknown status value"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Booking not found"
// @Router /admin/bookings/{id}/status [patch]
func (c *BookingController) UpdateBookingStatus(ctx *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.bookingService.UpdateStatus(ctx, ctx.Param("id"), req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Booking status updated successfully"))
}

// DeleteBooking deletes a booking
// @Summary Delete booking
// @Description Deletes a booking by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.APIResponse "Booking deleted"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Booking not found"
// @Router /admin/bookings/{id} [delete]
func (c *BookingController) DeleteBooking(ctx *gin.Context) {
	if err := c.bookingService.DeleteBooking(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Booking deleted successfully"))
}
