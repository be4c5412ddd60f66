package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the owner's appointments in status, newest first. An empty
// status lists everything.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	owner string,
	status string,
) ([]domain.Appointment, error) {

	st := domain.Status(status)
	if st != "" && !st.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	list, err := uc.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return domain.Filter(list, st), nil
}
