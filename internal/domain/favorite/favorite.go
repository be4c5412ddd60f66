package favorite

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
)

type Favorite struct {
	catalog.Shop
	AddedAt time.Time `json:"addedAt"`
}

type Repository interface {
	Load(ctx context.Context, owner string) ([]Favorite, error)
	Save(ctx context.Context, owner string, list []Favorite) error
	Update(ctx context.Context, owner string, fn func([]Favorite) ([]Favorite, error)) error
}

func Contains(list []Favorite, id int) bool {
	for _, f := range list {
		if f.ID == id {
			return true
		}
	}
	return false
}

func Remove(list []Favorite, id int) ([]Favorite, bool) {
	out := make([]Favorite, 0, len(list))
	removed := false
	for _, f := range list {
		if f.ID == id {
			removed = true
			continue
		}
		out = append(out, f)
	}
	return out, removed
}

// Toggle removes shop when present, otherwise appends it stamped with now.
func Toggle(list []Favorite, shop catalog.Shop, now time.Time) ([]Favorite, bool) {
	if out, removed := Remove(list, shop.ID); removed {
		return out, false
	}
	return append(list[:len(list):len(list)], Favorite{Shop: shop, AddedAt: now}), true
}

func NewestFirst(list []Favorite) []Favorite {
	out := make([]Favorite, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedAt.After(out[j].AddedAt)
	})
	return out
}
