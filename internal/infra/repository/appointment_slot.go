package repository

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

// AppointmentSlotRepository keeps the whole list in the barberShopAppointments
// slot, rewritten on every change.
type AppointmentSlotRepository struct {
	slot *storage.Slot[[]domain.Appointment]
}

func NewAppointmentSlotRepository(store storage.Store) *AppointmentSlotRepository {
	return &AppointmentSlotRepository{
		slot: storage.NewSlot(store, storage.KeyAppointments, func() []domain.Appointment {
			return []domain.Appointment{}
		}),
	}
}

var _ domain.Repository = (*AppointmentSlotRepository)(nil)

func (r *AppointmentSlotRepository) Load(ctx context.Context, owner string) ([]domain.Appointment, error) {
	return r.slot.Load(ctx, owner)
}

func (r *AppointmentSlotRepository) Save(ctx context.Context, owner string, list []domain.Appointment) error {
	return r.slot.Save(ctx, owner, nonNil(list))
}

func (r *AppointmentSlotRepository) Update(
	ctx context.Context,
	owner string,
	fn func([]domain.Appointment) ([]domain.Appointment, error),
) error {
	_, err := r.slot.Update(ctx, owner, func(cur []domain.Appointment) ([]domain.Appointment, error) {
		next, err := fn(cur)
		return nonNil(next), err
	})
	return err
}

// nonNil keeps an empty list serialized as [] rather than null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
