package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucNotification "github.com/BruksfildServices01/barber-booking/internal/usecase/notification"
)

type NotificationHandler struct {
	notifications *ucNotification.Service
}

func NewNotificationHandler(n *ucNotification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: n}
}

// GET /api/me/notifications?action=&page=&limit=
func (h *NotificationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(ucNotification.DefaultLimit)))

	q := ucNotification.Query{
		Action: c.Query("action"),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	cards, total, err := h.notifications.List(c.Request.Context(), middleware.OwnerID(c), q)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.Page(c, q.Page, q.Limit, total, cards)
}
