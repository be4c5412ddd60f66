package catalog

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func ids(list []Shop) []int {
	out := make([]int, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func TestSearchByLocationBucket(t *testing.T) {
	cases := []struct {
		location string
		want     []int
	}{
		{"Đà Nẵng", []int{101, 102, 103}},
		{"Hà Nội", []int{201, 202, 203, 204, 205}},
	}

	for _, tc := range cases {
		got, err := Search(SearchQuery{Location: tc.location})
		require.NoError(t, err)
		assert.Equal(t, tc.want, ids(got), tc.location)
	}

	hcm, err := Search(SearchQuery{Location: "TP. Hồ Chí Minh"})
	require.NoError(t, err)
	assert.Len(t, hcm, 10)
}

func TestSearchMatchesNameOrAddress(t *testing.T) {
	byName, err := Search(SearchQuery{Query: "ELITE"})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids(byName))

	byAddress, err := Search(SearchQuery{Location: "Hà Nội", Query: "hoàn kiếm"})
	require.NoError(t, err)
	assert.Equal(t, []int{201, 202}, ids(byAddress))
}

func TestSearchSortsByDistance(t *testing.T) {
	got, err := Search(SearchQuery{Location: "TP. Hồ Chí Minh", Sort: SortDistance})
	require.NoError(t, err)

	assert.Equal(t, []int{4, 2, 5, 1, 6, 3, 7, 8, 9, 10}, ids(got))
}

func TestSearchSortsByRatingThenReviews(t *testing.T) {
	got, err := Search(SearchQuery{Location: "Hà Nội", Sort: SortRating})
	require.NoError(t, err)

	// 202 and 205 share 4.8; 202 has more reviews.
	assert.Equal(t, []int{201, 202, 205, 203, 204}, ids(got))
}

func TestSearchRejectsUnknownInput(t *testing.T) {
	_, err := Search(SearchQuery{Location: "Huế"})
	assert.True(t, httperr.IsBusiness(err, "invalid_location"))

	_, err = Search(SearchQuery{Sort: "price"})
	assert.True(t, httperr.IsBusiness(err, "invalid_sort"))
}

func TestParseDistance(t *testing.T) {
	assert.Equal(t, 9.5, ParseDistance("9.5 km"))
	assert.Equal(t, 12.0, ParseDistance("12 km"))
	assert.True(t, math.IsInf(ParseDistance("xa lắm"), 1))
	assert.True(t, math.IsInf(ParseDistance("1.2.3 km"), 1))
}

func TestShopOrDefault(t *testing.T) {
	s, fallback := ShopOrDefault(102)
	assert.False(t, fallback)
	assert.Equal(t, "Chic Cuts Đà Nẵng", s.Name)

	s, fallback = ShopOrDefault(9999)
	assert.True(t, fallback)
	assert.Equal(t, 1, s.ID)
}

func TestCatalogSearchHonorsContext(t *testing.T) {
	c := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Search(ctx, SearchQuery{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindServiceAndFormat(t *testing.T) {
	s, ok := FindService("Gói VIP Chăm sóc toàn diện")
	require.True(t, ok)
	assert.Equal(t, int64(500000), s.PriceValue)
	assert.Equal(t, "500.000 VNĐ", s.Price)
	assert.Equal(t, "120 phút", s.Duration)

	_, ok = FindService("Không có")
	assert.False(t, ok)

	assert.Equal(t, "80.000 VNĐ", FormatVND(80000))
	assert.Equal(t, "1.250.000 VNĐ", FormatVND(1250000))
	assert.Equal(t, "0 VNĐ", FormatVND(0))
}

func TestFindBarber(t *testing.T) {
	b, ok := FindBarber(3)
	require.True(t, ok)
	assert.False(t, b.Available)

	_, ok = FindBarber(42)
	assert.False(t, ok)
}
