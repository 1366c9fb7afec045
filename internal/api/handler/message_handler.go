package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Shubham-3256/millets-cafe/internal/api/metrics"
	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// MessageHandler handles contact messages. Submission is public.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Submit handles POST /api/messages.
//
// @Summary      Send a contact message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                false  "Replay-safe request key"
// @Param        body             body      submitMessageRequest  true   "Message"
// @Success      201              {object}  domain.Message
// @Failure      400              {object}  map[string]string
// @Router       /api/messages [post]
func (h *MessageHandler) Submit(c echo.Context) error {
	var req submitMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitMessageInput{
		Name:           req.Name,
		Email:          req.Email,
		Body:           req.Message,
		IdempotencyKey: idempotencyKey(c),
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues(string(domain.KindMessage), strconv.FormatBool(created.Replayed)).Inc()
	return c.JSON(createdStatus(created.Replayed), created.Record)
}

// List handles GET /api/messages.
//
// @Summary      List contact messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   domain.Message
// @Router       /api/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	filter, err := listFilter(c)
	if err != nil {
		return err
	}

	messages, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Delete handles DELETE /api/messages/:id.
//
// @Summary      Delete a contact message
// @Tags         messages
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "message deleted"})
}
