package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list     *ucAppointment.ListAppointments
	cancel   *ucAppointment.CancelAppointment
	rebook   *ucAppointment.RebookAppointment
	complete *ucAppointment.CompleteAppointment
	reminder *ucAppointment.ToggleReminder
	edit     *ucAppointment.GetEditDraft
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	cancel *ucAppointment.CancelAppointment,
	rebook *ucAppointment.RebookAppointment,
	complete *ucAppointment.CompleteAppointment,
	reminder *ucAppointment.ToggleReminder,
	edit *ucAppointment.GetEditDraft,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:     list,
		cancel:   cancel,
		rebook:   rebook,
		complete: complete,
		reminder: reminder,
		edit:     edit,
	}
}

// ======================================================
// LIST
// ======================================================

// GET /api/me/appointments?status=upcoming|completed|canceled
func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), middleware.OwnerID(c), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// TRANSITIONS
// ======================================================

type transition func(ctx context.Context, owner, id string) (*domain.Appointment, error)

func (h *AppointmentHandler) run(c *gin.Context, fn transition) {
	ap, err := fn(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.run(c, h.cancel.Execute)
}

func (h *AppointmentHandler) Rebook(c *gin.Context) {
	h.run(c, h.rebook.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.run(c, h.complete.Execute)
}

func (h *AppointmentHandler) Reminder(c *gin.Context) {
	h.run(c, h.reminder.Execute)
}

// ======================================================
// EDIT
// ======================================================

// GET /api/me/appointments/:id/edit loads the booking back into the cart and
// returns the pre-filled payment form.
func (h *AppointmentHandler) EditDraft(c *gin.Context) {
	draft, err := h.edit.Execute(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, draft)
}
