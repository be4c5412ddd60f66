package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	owner string,
	id string,
) (*domain.Appointment, error) {

	ap, err := mutate(ctx, uc.repo, owner, id, func(ap *domain.Appointment) error {
		return domain.Complete(ap, uc.now())
	})
	if err != nil {
		return nil, err
	}

	dispatch(uc.audit, owner, audit.ActionAppointmentCompleted, ap)
	return ap, nil
}
