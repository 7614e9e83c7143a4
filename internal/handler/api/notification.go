package api

import (
	"io"
	"net/http"
	"time"

	resdto "flashsale-scheduler/internal/handler/dto/response"
	"flashsale-scheduler/internal/handler/httperr"
	"flashsale-scheduler/internal/infra/notifier"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const streamKeepAlive = 15 * time.Second

// NotificationFeed is the read side of the notification hub.
type NotificationFeed interface {
	Active() []notifier.Notification
	Dismiss(id uuid.UUID) bool
	Subscribe() (<-chan notifier.Notification, func())
}

type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// @Summary Active notifications
// @Description Notifications that are neither expired nor dismissed, oldest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromNotifications(h.feed.Active()))
}

// @Summary Dismiss notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if !h.feed.Dismiss(id) {
		httperr.AbortWithError(c, http.StatusNotFound, errUnknownNotification, "Notification not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Notification stream
// @Description Server-sent events, one "notification" event per published message
// @Tags notifications
// @Produce text/event-stream
// @Security BearerAuth
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	events, cancel := h.feed.Subscribe()
	defer cancel()

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case n, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("notification", resdto.FromNotification(n))
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", "")
			return true
		}
	})
}
