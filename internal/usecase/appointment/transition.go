package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// mutate applies fn to one appointment and persists the full list.
func mutate(
	ctx context.Context,
	repo domain.Repository,
	owner string,
	id string,
	fn func(ap *domain.Appointment) error,
) (*domain.Appointment, error) {

	var out domain.Appointment
	err := repo.Update(ctx, owner, func(list []domain.Appointment) ([]domain.Appointment, error) {
		i := domain.Find(list, id)
		if i < 0 {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		if err := fn(&list[i]); err != nil {
			return nil, err
		}
		out = list[i]
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func dispatch(d *audit.Dispatcher, owner, action string, ap *domain.Appointment) {
	d.Dispatch(audit.Event{
		OwnerID:  owner,
		Action:   action,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"barber_shop": ap.BarberShop,
			"date":        ap.Date,
			"time":        ap.Time,
		},
	})
}
