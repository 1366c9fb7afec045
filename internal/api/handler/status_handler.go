package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shubham-3256/millets-cafe/internal/api/metrics"
	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// StatusHandler applies workflow status changes to orders, bookings and messages.
type StatusHandler struct {
	workflow ports.WorkflowService
}

func NewStatusHandler(workflow ports.WorkflowService) *StatusHandler {
	return &StatusHandler{workflow: workflow}
}

// SetStatus returns the PUT /api/<kind>s/:id/status handler for kind.
//
// @Summary      Update the status of an order, booking or message
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Record id"
// @Param        body  body      setStatusRequest  true  "New status: pending, approved, completed or cancelled"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/orders/{id}/status [put]
// @Router       /api/bookings/{id}/status [put]
// @Router       /api/messages/{id}/status [put]
func (h *StatusHandler) SetStatus(kind domain.RecordKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := ctxClaims(c)
		if err != nil {
			return err
		}

		var req setStatusRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}

		rec, err := h.workflow.SetStatus(c.Request().Context(), kind, c.Param("id"), req.Status, *claims)
		if err != nil {
			return err
		}

		metrics.StatusChangesTotal.WithLabelValues(string(kind), string(rec.CurrentStatus())).Inc()
		return c.JSON(http.StatusOK, rec)
	}
}
