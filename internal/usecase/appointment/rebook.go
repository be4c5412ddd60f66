package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

type RebookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRebookAppointment(repo domain.Repository, audit *audit.Dispatcher) *RebookAppointment {
	return &RebookAppointment{repo: repo, audit: audit}
}

func (uc *RebookAppointment) Execute(
	ctx context.Context,
	owner string,
	id string,
) (*domain.Appointment, error) {

	ap, err := mutate(ctx, uc.repo, owner, id, domain.Rebook)
	if err != nil {
		return nil, err
	}

	dispatch(uc.audit, owner, audit.ActionAppointmentRebooked, ap)
	return ap, nil
}
