package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Shubham-3256/millets-cafe/internal/api/metrics"
	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// BookingHandler handles HTTP requests for table bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Book handles POST /api/bookings.
//
// @Summary      Book a table
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string            false  "Replay-safe request key"
// @Param        body             body      bookTableRequest  true   "Booking details"
// @Success      201              {object}  domain.Booking
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Book(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req bookTableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Book(c.Request().Context(), toBookTableInput(req, claims.SubjectID, idempotencyKey(c)))
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues(string(domain.KindBooking), strconv.FormatBool(created.Replayed)).Inc()
	return c.JSON(createdStatus(created.Replayed), created.Record)
}

// Mine handles GET /api/my-bookings.
//
// @Summary      List the caller's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Router       /api/my-bookings [get]
func (h *BookingHandler) Mine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListMine(c.Request().Context(), claims.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// List handles GET /api/bookings.
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   domain.Booking
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Delete handles DELETE /api/bookings/:id.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "booking deleted"})
}
