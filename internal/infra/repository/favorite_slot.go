package repository

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/favorite"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

type FavoriteSlotRepository struct {
	slot *storage.Slot[[]domain.Favorite]
}

func NewFavoriteSlotRepository(store storage.Store) *FavoriteSlotRepository {
	return &FavoriteSlotRepository{
		slot: storage.NewSlot(store, storage.KeyFavorites, func() []domain.Favorite {
			return []domain.Favorite{}
		}),
	}
}

var _ domain.Repository = (*FavoriteSlotRepository)(nil)

func (r *FavoriteSlotRepository) Load(ctx context.Context, owner string) ([]domain.Favorite, error) {
	return r.slot.Load(ctx, owner)
}

func (r *FavoriteSlotRepository) Save(ctx context.Context, owner string, list []domain.Favorite) error {
	return r.slot.Save(ctx, owner, nonNil(list))
}

func (r *FavoriteSlotRepository) Update(
	ctx context.Context,
	owner string,
	fn func([]domain.Favorite) ([]domain.Favorite, error),
) error {
	_, err := r.slot.Update(ctx, owner, func(cur []domain.Favorite) ([]domain.Favorite, error) {
		next, err := fn(cur)
		return nonNil(next), err
	})
	return err
}
