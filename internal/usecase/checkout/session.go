package checkout

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/countdown"
	"github.com/BruksfildServices01/barber-booking/internal/domain/cart"
	"github.com/BruksfildServices01/barber-booking/internal/domain/payment"
)

type State string

const (
	StateConfirmed       State = "confirmed"
	StateAwaitingPayment State = "awaiting_payment"
	StateExpired         State = "expired"
	StateCanceled        State = "canceled"
	StateCompleted       State = "completed"
	StateFailed          State = "failed"

	// StatusUpdated is reported for edit mode, which never opens a session.
	StatusUpdated = "updated"
)

func (s State) Terminal() bool {
	switch s {
	case StateExpired, StateCanceled, StateCompleted, StateFailed:
		return true
	}
	return false
}

const (
	TimerQR      = "qr_expiry"
	TimerSuccess = "success_redirect"
)

type session struct {
	id    string
	owner string
	state State

	shop     catalog.Shop
	date     string
	time     string
	method   payment.Method
	barber   catalog.Barber
	items    []cart.Item
	quote    payment.Quote
	transfer *payment.TransferInfo

	appointmentID string
	createdAt     time.Time

	timer     *countdown.Countdown
	timerKind string
}

// View is the client-facing snapshot of a session.
type View struct {
	ID            string                `json:"id"`
	Status        State                 `json:"status"`
	Shop          catalog.Shop          `json:"shop"`
	Date          string                `json:"date"`
	Time          string                `json:"time"`
	PaymentMethod payment.Method        `json:"paymentMethod"`
	Barber        catalog.Barber        `json:"barber"`
	Items         []cart.Item           `json:"items"`
	Quote         payment.Quote         `json:"quote"`
	Transfer      *payment.TransferInfo `json:"transfer,omitempty"`
	Countdown     int                   `json:"countdown"`
	CountdownText string                `json:"countdown_text"`
	CountdownKind string                `json:"countdown_kind,omitempty"`
	AppointmentID string                `json:"appointment_id,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

func (s *session) view() View {
	v := View{
		ID:            s.id,
		Status:        s.state,
		Shop:          s.shop,
		Date:          s.date,
		Time:          s.time,
		PaymentMethod: s.method,
		Barber:        s.barber,
		Items:         s.items,
		Quote:         s.quote,
		Transfer:      s.transfer,
		AppointmentID: s.appointmentID,
		CreatedAt:     s.createdAt,
	}
	if s.timer != nil && !s.state.Terminal() {
		v.Countdown = s.timer.Remaining()
		v.CountdownKind = s.timerKind
	}
	v.CountdownText = countdown.Format(v.Countdown)
	return v
}
