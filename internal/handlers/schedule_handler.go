package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

type ScheduleHandler struct {
	picker *schedule.Picker
}

func NewScheduleHandler(picker *schedule.Picker) *ScheduleHandler {
	return &ScheduleHandler{picker: picker}
}

type ScheduleResponse struct {
	Days     []schedule.Day          `json:"days"`
	Date     string                  `json:"date"`
	Sessions []schedule.SessionGroup `json:"sessions"`
}

// GET /api/me/schedule?date=YYYY-MM-DD, defaulting to today.
func (h *ScheduleHandler) Get(c *gin.Context) {
	days := h.picker.Days()

	date := c.Query("date")
	if date == "" {
		date = days[0].Date
	}

	slots, err := h.picker.Slots(middleware.OwnerID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ScheduleResponse{
		Days:     days,
		Date:     date,
		Sessions: schedule.GroupBySession(slots),
	})
}
