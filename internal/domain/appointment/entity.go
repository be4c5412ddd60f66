package appointment

import (
	"sort"
	"strconv"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/cart"
)

type Appointment struct {
	ID             string      `json:"id"`
	Date           string      `json:"date"`
	Time           string      `json:"time"`
	BarberShop     string      `json:"barberShop"`
	ShopID         int         `json:"shopId,omitempty"`
	Address        string      `json:"address"`
	Services       string      `json:"services"`
	ServicesDetail []cart.Item `json:"servicesDetail,omitempty"`
	Image          string      `json:"image"`
	RemindMe       bool        `json:"remindMe"`
	Status         Status      `json:"status"`
	TotalAmount    int64       `json:"totalAmount,omitempty"`
	PaymentMethod  string      `json:"paymentMethod,omitempty"`
	Barber         string      `json:"barber,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	CanceledAt     *time.Time  `json:"canceledAt,omitempty"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`
}

// NewID derives an id from the creation instant in milliseconds.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *Appointment, now time.Time) error {
	if err := CanCancel(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusCanceled
	ap.CanceledAt = &now
	return nil
}

func Rebook(ap *Appointment) error {
	if err := CanRebook(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusUpcoming
	ap.CanceledAt = nil
	return nil
}

func Complete(ap *Appointment, now time.Time) error {
	if err := CanComplete(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusCompleted
	ap.CompletedAt = &now
	return nil
}

// ===============================
// Queries
// ===============================

// Filter keeps appointments in status, newest first. An empty status keeps all.
func Filter(list []Appointment, status Status) []Appointment {
	out := make([]Appointment, 0, len(list))
	for _, ap := range list {
		if status == "" || ap.Status == status {
			out = append(out, ap)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func Find(list []Appointment, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// Prepend puts ap at the head, matching display order for new bookings.
func Prepend(list []Appointment, ap Appointment) []Appointment {
	return append([]Appointment{ap}, list...)
}
