package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

type ToggleReminder struct {
	repo domain.Repository
}

func NewToggleReminder(repo domain.Repository) *ToggleReminder {
	return &ToggleReminder{repo: repo}
}

func (uc *ToggleReminder) Execute(
	ctx context.Context,
	owner string,
	id string,
) (*domain.Appointment, error) {

	return mutate(ctx, uc.repo, owner, id, func(ap *domain.Appointment) error {
		ap.RemindMe = !ap.RemindMe
		return nil
	})
}
