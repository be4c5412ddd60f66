package cart

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
)

var (
	haircut = catalog.Service{Name: "Cắt tóc nam", Price: "80.000 VNĐ", PriceValue: 80000, Duration: "30 phút"}
	wash    = catalog.Service{Name: "Gội đầu thư giãn", Price: "50.000 VNĐ", PriceValue: 50000, Duration: "20 phút"}
	shave   = catalog.Service{Name: "Cạo râu tạo kiểu", Price: "70.000 VNĐ", PriceValue: 70000, Duration: "15 phút"}
)

func TestAddAndIncrementTotals(t *testing.T) {
	c := New(1)

	c.Add(haircut)
	c.Add(wash)
	assert.Equal(t, int64(130000), c.Total())

	require.True(t, c.Increment(haircut.Name))
	assert.Equal(t, int64(210000), c.Total())
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, "Cắt tóc nam x2, Gội đầu thư giãn", c.Describe())
}

func TestAddExistingIncrementsQuantity(t *testing.T) {
	c := New(1)
	c.Add(shave)
	c.Add(shave)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestSetQuantityNonPositiveRemoves(t *testing.T) {
	cases := []struct {
		name string
		q    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"positive", 4, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(1)
			c.Add(haircut)

			assert.True(t, c.SetQuantity(haircut.Name, tc.q))
			assert.Len(t, c.Items, tc.want)
		})
	}
}

func TestUnknownNameIsNoop(t *testing.T) {
	c := New(1)
	c.Add(haircut)

	assert.False(t, c.SetQuantity("Không có", 2))
	assert.False(t, c.Increment("Không có"))
	assert.False(t, c.Decrement("Không có"))
	assert.False(t, c.Remove("Không có"))
	assert.Equal(t, int64(80000), c.Total())
}

func TestDecrementAtOneRemoves(t *testing.T) {
	c := New(1)
	c.Add(wash)

	assert.True(t, c.Decrement(wash.Name))
	assert.True(t, c.Empty())
}

func TestRandomSequencesKeepTotalConsistent(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	services := []catalog.Service{haircut, wash, shave}

	for run := 0; run < 200; run++ {
		c := New(1)
		for step := 0; step < 40; step++ {
			svc := services[r.IntN(len(services))]
			switch r.IntN(5) {
			case 0:
				c.Add(svc)
			case 1:
				c.SetQuantity(svc.Name, r.IntN(7)-2)
			case 2:
				c.Increment(svc.Name)
			case 3:
				c.Decrement(svc.Name)
			case 4:
				c.Remove(svc.Name)
			}

			var want int64
			seen := map[string]bool{}
			for _, it := range c.Items {
				require.Positive(t, it.Quantity)
				require.False(t, seen[it.Name], "duplicate %s", it.Name)
				seen[it.Name] = true
				want += it.PriceValue * int64(it.Quantity)
			}
			require.Equal(t, want, c.Total())
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := New(2)
	c.Add(haircut)

	snap := c.Snapshot()
	c.Add(haircut)

	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 2, snap.ShopID)
}
