package catalog

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	SortDistance = "distance"
	SortRating   = "rating"
)

type SearchQuery struct {
	Location string
	Query    string
	Sort     string
}

// Catalog answers shop searches after an optional artificial delay.
type Catalog struct {
	latency time.Duration
}

func New(latency time.Duration) *Catalog {
	return &Catalog{latency: latency}
}

func (c *Catalog) Search(ctx context.Context, q SearchQuery) ([]Shop, error) {
	if c.latency > 0 {
		t := time.NewTimer(c.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return Search(q)
}

// Search filters by location bucket, then by name/address substring, then
// sorts. An empty location searches every region.
func Search(q SearchQuery) ([]Shop, error) {
	var loc *Location
	if q.Location != "" {
		l, ok := FindLocation(q.Location)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_location")
		}
		loc = &l
	}

	switch q.Sort {
	case "", SortDistance, SortRating:
	default:
		return nil, httperr.ErrBusiness("invalid_sort")
	}

	needle := strings.ToLower(strings.TrimSpace(q.Query))

	out := make([]Shop, 0, len(shops))
	for _, s := range shops {
		if loc != nil && !loc.Contains(s.ID) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(s.Name), needle) &&
			!strings.Contains(strings.ToLower(s.Address), needle) {
			continue
		}
		out = append(out, s)
	}

	switch q.Sort {
	case SortDistance:
		sort.SliceStable(out, func(i, j int) bool {
			return ParseDistance(out[i].Distance) < ParseDistance(out[j].Distance)
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return out[i].Reviews > out[j].Reviews
		})
	}

	return out, nil
}

// ParseDistance keeps digits and dots ("9.5 km" -> 9.5). Anything that still
// fails to parse sorts last.
func ParseDistance(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}
