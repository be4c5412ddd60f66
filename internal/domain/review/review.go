package review

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const MaxPhotos = 3

type Repository interface {
	Create(ctx context.Context, r *models.Review) error
	ListByShop(ctx context.Context, shopID int) ([]models.Review, error)
}

type Input struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Photos  []string `json:"photos"`
}

func (in Input) Validate() error {
	if in.Rating == 0 {
		return httperr.ErrBusiness("missing_rating")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}
	if len(in.Photos) > MaxPhotos {
		return httperr.ErrBusiness("too_many_photos")
	}
	return nil
}
