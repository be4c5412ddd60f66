package favorite

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
)

func shopIDs(list []Favorite) []int {
	out := make([]int, len(list))
	for i, f := range list {
		out[i] = f.ID
	}
	return out
}

func TestToggleTwiceRestoresSet(t *testing.T) {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	start := []Favorite{{Shop: catalog.Shop{ID: 4}, AddedAt: now}}
	shops := catalog.Shops()
	r := rand.New(rand.NewPCG(1, 2))

	for run := 0; run < 50; run++ {
		shop := shops[r.IntN(len(shops))]

		list, added := Toggle(start, shop, now)
		assert.Equal(t, !Contains(start, shop.ID), added)

		list, _ = Toggle(list, shop, now.Add(time.Minute))
		assert.ElementsMatch(t, shopIDs(start), shopIDs(list))
	}
}

func TestNewestFirst(t *testing.T) {
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	var list []Favorite
	list, _ = Toggle(list, catalog.Shop{ID: 1}, now)
	list, _ = Toggle(list, catalog.Shop{ID: 2}, now.Add(2*time.Minute))
	list, _ = Toggle(list, catalog.Shop{ID: 3}, now.Add(time.Minute))

	assert.Equal(t, []int{2, 3, 1}, shopIDs(NewestFirst(list)))
	assert.Equal(t, []int{1, 2, 3}, shopIDs(list))
}

func TestRemove(t *testing.T) {
	list := []Favorite{{Shop: catalog.Shop{ID: 1}}, {Shop: catalog.Shop{ID: 2}}}

	out, removed := Remove(list, 2)
	assert.True(t, removed)
	assert.Equal(t, []int{1}, shopIDs(out))

	_, removed = Remove(out, 9)
	assert.False(t, removed)
}
