package schedule

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	WindowDays = 7
	DateLayout = "2006-01-02"
)

type Session string

const (
	SessionMorning   Session = "Sáng"
	SessionNoon      Session = "Trưa"
	SessionAfternoon Session = "Chiều"
	SessionEvening   Session = "Tối"
)

var sessionOrder = []Session{SessionMorning, SessionNoon, SessionAfternoon, SessionEvening}

type Slot struct {
	Time     string  `json:"time"`
	Session  Session `json:"session"`
	IsBooked bool    `json:"isBooked"`
}

type Day struct {
	Date      string `json:"date"`
	DayOfWeek string `json:"dayOfWeek"`
	Day       int    `json:"day"`
	Month     string `json:"month"`
	Label     string `json:"label"`
	IsToday   bool   `json:"isToday"`
}

type SessionGroup struct {
	Session Session `json:"session"`
	Slots   []Slot  `json:"slots"`
}

// Days returns the booking window starting at now's calendar day.
func Days(now time.Time) []Day {
	start := timezone.StartOfDay(now)
	out := make([]Day, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, Day{
			Date:      d.Format(DateLayout),
			DayOfWeek: d.Format("Mon"),
			Day:       d.Day(),
			Month:     d.Format("Jan"),
			Label:     d.Format("Mon 2, Jan"),
			IsToday:   i == 0,
		})
	}
	return out
}

// InWindow reports whether date (YYYY-MM-DD) falls inside Days(now).
func InWindow(now time.Time, date string) bool {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	start := timezone.StartOfDay(now)
	return !d.Before(start) && d.Before(start.AddDate(0, 0, WindowDays))
}

func sessionFor(minutes int) Session {
	switch {
	case minutes <= 11*60:
		return SessionMorning
	case minutes <= 13*60:
		return SessionNoon
	case minutes <= 18*60:
		return SessionAfternoon
	default:
		return SessionEvening
	}
}

// BaseSlots lists the half-hour slots from 07:00 AM to 08:00 PM.
func BaseSlots() []Slot {
	out := make([]Slot, 0, 27)
	for m := 7 * 60; m <= 20*60; m += 30 {
		out = append(out, Slot{
			Time:    formatClock(m),
			Session: sessionFor(m),
		})
	}
	return out
}

func formatClock(minutes int) string {
	h, m := minutes/60, minutes%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}

func GroupBySession(slots []Slot) []SessionGroup {
	bySession := make(map[Session][]Slot, len(sessionOrder))
	for _, s := range slots {
		bySession[s.Session] = append(bySession[s.Session], s)
	}

	out := make([]SessionGroup, 0, len(sessionOrder))
	for _, sess := range sessionOrder {
		if len(bySession[sess]) == 0 {
			continue
		}
		out = append(out, SessionGroup{Session: sess, Slots: bySession[sess]})
	}
	return out
}
