package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/review"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ReviewRepository struct {
	mu     sync.RWMutex
	nextID uint
	rows   []models.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

var _ domain.Repository = (*ReviewRepository)(nil)

func (r *ReviewRepository) Create(_ context.Context, rv *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	rv.ID = r.nextID
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *rv)
	return nil
}

func (r *ReviewRepository) ListByShop(_ context.Context, shopID int) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, 0)
	for _, rv := range r.rows {
		if rv.ShopID == shopID {
			out = append(out, rv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
