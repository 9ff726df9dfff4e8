package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/response"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

type NotificationHandler struct {
	svc *application.NotificationService
}

func NewNotificationHandler(svc *application.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	unread, _ := strconv.ParseBool(c.Query("unread"))
	page := utils.ParsePage(c)

	items, total, err := h.svc.List(c.Request.Context(), actor, notification.ListFilter{UnreadOnly: unread}, page)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Paginated(c, "", items, response.NewMeta(page, total))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	n, err := h.svc.UnreadCount(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "", gin.H{"count": n})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "notification")
	if !ok {
		return
	}
	if err := h.svc.MarkRead(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	n, err := h.svc.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "notifications marked as read", gin.H{"updated": n})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "notification")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, "notification deleted", nil)
}
