package schedule

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func fixedNow(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestBaseSlots(t *testing.T) {
	slots := BaseSlots()
	require.Len(t, slots, 27)

	assert.Equal(t, Slot{Time: "07:00 AM", Session: SessionMorning}, slots[0])
	assert.Equal(t, Slot{Time: "11:00 AM", Session: SessionMorning}, slots[8])
	assert.Equal(t, Slot{Time: "11:30 AM", Session: SessionNoon}, slots[9])
	assert.Equal(t, Slot{Time: "12:00 PM", Session: SessionNoon}, slots[10])
	assert.Equal(t, Slot{Time: "01:00 PM", Session: SessionNoon}, slots[12])
	assert.Equal(t, Slot{Time: "01:30 PM", Session: SessionAfternoon}, slots[13])
	assert.Equal(t, Slot{Time: "06:00 PM", Session: SessionAfternoon}, slots[22])
	assert.Equal(t, Slot{Time: "06:30 PM", Session: SessionEvening}, slots[23])
	assert.Equal(t, Slot{Time: "08:00 PM", Session: SessionEvening}, slots[26])
}

func TestGroupBySession(t *testing.T) {
	groups := GroupBySession(BaseSlots())
	require.Len(t, groups, 4)

	counts := []int{9, 4, 10, 4}
	for i, g := range groups {
		assert.Equal(t, sessionOrder[i], g.Session)
		assert.Len(t, g.Slots, counts[i])
	}
}

func TestDays(t *testing.T) {
	now := time.Date(2025, 10, 20, 22, 15, 0, 0, time.UTC)
	days := Days(now)

	require.Len(t, days, WindowDays)
	assert.Equal(t, Day{Date: "2025-10-20", DayOfWeek: "Mon", Day: 20, Month: "Oct", Label: "Mon 20, Oct", IsToday: true}, days[0])
	assert.Equal(t, "2025-10-26", days[6].Date)
	assert.False(t, days[6].IsToday)

	assert.True(t, InWindow(now, "2025-10-26"))
	assert.False(t, InWindow(now, "2025-10-27"))
	assert.False(t, InWindow(now, "2025-10-19"))
	assert.False(t, InWindow(now, "20/10/2025"))
}

func TestPickerMarksTwoOrThreeAndIsStable(t *testing.T) {
	now := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)
	r := rand.New(rand.NewPCG(3, 4))
	p := NewPicker(fixedNow(now), r.IntN)

	for _, day := range p.Days() {
		first, err := p.Slots("1", day.Date)
		require.NoError(t, err)

		booked := 0
		for _, s := range first {
			if s.IsBooked {
				booked++
			}
		}
		assert.GreaterOrEqual(t, booked, 2)
		assert.LessOrEqual(t, booked, 3)

		again, err := p.Slots("1", day.Date)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPickerAvailable(t *testing.T) {
	now := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)
	p := NewPicker(fixedNow(now), nil)

	slots, err := p.Slots("1", "2025-10-21")
	require.NoError(t, err)

	var free, taken string
	for _, s := range slots {
		if s.IsBooked && taken == "" {
			taken = s.Time
		}
		if !s.IsBooked && free == "" {
			free = s.Time
		}
	}

	assert.NoError(t, p.Available("1", "2025-10-21", free))
	assert.True(t, httperr.IsBusiness(p.Available("1", "2025-10-21", taken), "slot_unavailable"))
	assert.True(t, httperr.IsBusiness(p.Available("1", "2025-10-21", "06:30 AM"), "invalid_time"))
	assert.True(t, httperr.IsBusiness(p.Available("1", "2025-11-30", free), "date_out_of_window"))
}

func TestPickerPrunesPastDates(t *testing.T) {
	now := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)
	p := NewPicker(func() time.Time { return now }, nil)

	_, err := p.Slots("1", "2025-10-20")
	require.NoError(t, err)

	now = now.AddDate(0, 0, 1)
	_, err = p.Slots("1", "2025-10-21")
	require.NoError(t, err)

	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Len(t, p.booked, 1)
}
