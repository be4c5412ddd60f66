package repository

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/profile"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

type ProfileSlotRepository struct {
	slot *storage.Slot[domain.Profile]
}

func NewProfileSlotRepository(store storage.Store) *ProfileSlotRepository {
	return &ProfileSlotRepository{
		slot: storage.NewSlot(store, storage.KeyUser, domain.Default),
	}
}

var _ domain.Repository = (*ProfileSlotRepository)(nil)

func (r *ProfileSlotRepository) Load(ctx context.Context, owner string) (domain.Profile, error) {
	return r.slot.Load(ctx, owner)
}

func (r *ProfileSlotRepository) Save(ctx context.Context, owner string, p domain.Profile) error {
	return r.slot.Save(ctx, owner, p)
}

func (r *ProfileSlotRepository) Update(
	ctx context.Context,
	owner string,
	fn func(domain.Profile) (domain.Profile, error),
) (domain.Profile, error) {
	return r.slot.Update(ctx, owner, fn)
}
