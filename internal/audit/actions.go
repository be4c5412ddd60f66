package audit

const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentUpdated   = "appointment_updated"
	ActionAppointmentCanceled  = "appointment_canceled"
	ActionAppointmentRebooked  = "appointment_rebooked"
	ActionAppointmentCompleted = "appointment_completed"
	ActionFavoriteAdded        = "favorite_added"
	ActionFavoriteRemoved      = "favorite_removed"
	ActionReviewCreated        = "review_created"
	ActionProfileUpdated       = "profile_updated"
)
