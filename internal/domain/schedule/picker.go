package schedule

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type pickKey struct {
	owner string
	date  string
}

// Picker fakes shop occupancy: each (owner, date) gets 2 or 3 booked slots,
// drawn once and reused for every later read.
type Picker struct {
	mu     sync.Mutex
	now    func() time.Time
	intN   func(n int) int
	booked map[pickKey]map[string]bool
}

func NewPicker(now func() time.Time, intN func(n int) int) *Picker {
	if intN == nil {
		intN = rand.IntN
	}
	return &Picker{
		now:    now,
		intN:   intN,
		booked: make(map[pickKey]map[string]bool),
	}
}

func (p *Picker) Days() []Day {
	return Days(p.now())
}

// Slots returns the day's slots with booked ones flagged.
func (p *Picker) Slots(owner, date string) ([]Slot, error) {
	now := p.now()
	if !InWindow(now, date) {
		return nil, httperr.ErrBusiness("date_out_of_window")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.prune(now)
	booked := p.bookedFor(pickKey{owner: owner, date: date})

	slots := BaseSlots()
	for i := range slots {
		slots[i].IsBooked = booked[slots[i].Time]
	}
	return slots, nil
}

// Available validates a checkout choice against the picker state.
func (p *Picker) Available(owner, date, t string) error {
	slots, err := p.Slots(owner, date)
	if err != nil {
		return err
	}
	for _, s := range slots {
		if s.Time != t {
			continue
		}
		if s.IsBooked {
			return httperr.ErrBusiness("slot_unavailable")
		}
		return nil
	}
	return httperr.ErrBusiness("invalid_time")
}

func (p *Picker) bookedFor(k pickKey) map[string]bool {
	if b, ok := p.booked[k]; ok {
		return b
	}

	base := BaseSlots()
	want := 2 + p.intN(2)
	b := make(map[string]bool, want)
	for len(b) < want {
		b[base[p.intN(len(base))].Time] = true
	}
	p.booked[k] = b
	return b
}

func (p *Picker) prune(now time.Time) {
	today := now.Format(DateLayout)
	for k := range p.booked {
		if k.date < today {
			delete(p.booked, k)
		}
	}
}
