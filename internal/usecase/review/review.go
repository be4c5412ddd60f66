package review

import (
	"context"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/profile"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/review"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type Service struct {
	repo     domain.Repository
	profiles profile.Repository
	audit    *audit.Dispatcher
	now      timezone.Clock
}

func NewService(
	repo domain.Repository,
	profiles profile.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		audit:    audit,
		now:      now,
	}
}

// Create stores a review signed with the owner's current profile name.
func (s *Service) Create(ctx context.Context, owner string, shopID int, in domain.Input) (*models.Review, error) {
	shop, ok := catalog.FindShop(shopID)
	if !ok {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	photos := make([]string, 0, len(in.Photos))
	for _, p := range in.Photos {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}
	in.Photos = photos

	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.profiles.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	rv := &models.Review{
		ShopID:    shop.ID,
		OwnerID:   owner,
		Author:    p.Name,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		Photos:    photos,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		OwnerID:  owner,
		Action:   audit.ActionReviewCreated,
		Entity:   "shop",
		EntityID: strconv.Itoa(shop.ID),
		Metadata: map[string]any{
			"name":   shop.Name,
			"rating": rv.Rating,
		},
	})
	return rv, nil
}

func (s *Service) List(ctx context.Context, shopID int) ([]models.Review, error) {
	return s.repo.ListByShop(ctx, shopID)
}
