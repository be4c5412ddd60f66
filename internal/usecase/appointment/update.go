package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/cart"
)

type UpdateInput struct {
	Date          string
	Time          string
	Items         []cart.Item
	TotalAmount   int64
	PaymentMethod string
	Barber        string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(repo domain.Repository, audit *audit.Dispatcher) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, audit: audit}
}

// Execute rewrites the booking details of an existing appointment in place,
// keeping its id, status and creation time.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	owner string,
	id string,
	in UpdateInput,
) (*domain.Appointment, error) {

	ap, err := mutate(ctx, uc.repo, owner, id, func(ap *domain.Appointment) error {
		ap.Date = in.Date
		ap.Time = in.Time
		ap.Services = cart.Describe(in.Items)
		ap.ServicesDetail = in.Items
		ap.TotalAmount = in.TotalAmount
		ap.PaymentMethod = in.PaymentMethod
		ap.Barber = in.Barber
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatch(uc.audit, owner, audit.ActionAppointmentUpdated, ap)
	return ap, nil
}
