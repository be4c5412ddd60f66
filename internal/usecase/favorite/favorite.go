package favorite

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/favorite"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type Service struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewService(repo domain.Repository, audit *audit.Dispatcher, now timezone.Clock) *Service {
	return &Service{repo: repo, audit: audit, now: now}
}

// List returns favorites newest first.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Favorite, error) {
	list, err := s.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return domain.NewestFirst(list), nil
}

func (s *Service) Status(ctx context.Context, owner string, shopID int) (bool, error) {
	list, err := s.repo.Load(ctx, owner)
	if err != nil {
		return false, err
	}
	return domain.Contains(list, shopID), nil
}

// Toggle flips shopID in the owner's favorites and reports whether it is now
// a favorite.
func (s *Service) Toggle(ctx context.Context, owner string, shopID int) (bool, error) {
	shop, ok := catalog.FindShop(shopID)
	if !ok {
		return false, httperr.ErrBusiness("shop_not_found")
	}

	var added bool
	err := s.repo.Update(ctx, owner, func(list []domain.Favorite) ([]domain.Favorite, error) {
		var next []domain.Favorite
		next, added = domain.Toggle(list, shop, s.now())
		return next, nil
	})
	if err != nil {
		return false, err
	}

	action := audit.ActionFavoriteRemoved
	if added {
		action = audit.ActionFavoriteAdded
	}
	s.dispatch(owner, action, shop)
	return added, nil
}

func (s *Service) Remove(ctx context.Context, owner string, shopID int) error {
	var removed bool
	err := s.repo.Update(ctx, owner, func(list []domain.Favorite) ([]domain.Favorite, error) {
		var next []domain.Favorite
		next, removed = domain.Remove(list, shopID)
		return next, nil
	})
	if err != nil {
		return err
	}
	if !removed {
		return httperr.ErrBusiness("favorite_not_found")
	}

	shop, _ := catalog.FindShop(shopID)
	shop.ID = shopID
	s.dispatch(owner, audit.ActionFavoriteRemoved, shop)
	return nil
}

func (s *Service) dispatch(owner, action string, shop catalog.Shop) {
	s.audit.Dispatch(audit.Event{
		OwnerID:  owner,
		Action:   action,
		Entity:   "shop",
		EntityID: strconv.Itoa(shop.ID),
		Metadata: map[string]any{"name": shop.Name},
	})
}
