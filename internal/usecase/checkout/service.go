package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/countdown"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucCart "github.com/BruksfildServices01/barber-booking/internal/usecase/cart"
)

type Config struct {
	QRSeconds      int
	SuccessSeconds int
	Tick           time.Duration
	Retention      time.Duration
}

// Recorder receives checkout lifecycle signals; the metrics package
// implements it.
type Recorder interface {
	SessionOpened()
	SessionClosed(state string)
	Booked(method string)
}

type nopRecorder struct{}

func (nopRecorder) SessionOpened()       {}
func (nopRecorder) SessionClosed(string) {}
func (nopRecorder) Booked(string)        {}

type Input struct {
	ShopID        int    `json:"shopId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PaymentMethod string `json:"paymentMethod"`
	BarberID      int    `json:"barberId"`
	DiscountCode  string `json:"discountCode"`
	AppointmentID string `json:"appointmentId"`
}

type Result struct {
	Status      string              `json:"status"`
	Session     *View               `json:"session,omitempty"`
	Appointment *domain.Appointment `json:"appointment,omitempty"`
}

type Service struct {
	mu       sync.Mutex
	sessions map[string]*session

	carts  *ucCart.Service
	picker *schedule.Picker
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment

	cfg     Config
	now     timezone.Clock
	log     *zap.Logger
	metrics Recorder
}

func NewService(
	carts *ucCart.Service,
	picker *schedule.Picker,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	cfg Config,
	now timezone.Clock,
	log *zap.Logger,
	metrics Recorder,
) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		sessions: make(map[string]*session),
		carts:    carts,
		picker:   picker,
		create:   create,
		update:   update,
		cfg:      cfg,
		now:      now,
		log:      log,
		metrics:  metrics,
	}
}

// Quote prices the owner's current cart with an optional discount code.
func (s *Service) Quote(owner, code string) (payment.Quote, error) {
	c := s.carts.Snapshot(owner)
	if c.Empty() {
		return payment.Quote{}, httperr.ErrBusiness("empty_cart")
	}
	return payment.NewQuote(c.Total(), code)
}

// Create validates the booking form and either rewrites an existing
// appointment (edit mode) or opens a checkout session.
func (s *Service) Create(ctx context.Context, owner string, in Input) (*Result, error) {
	c := s.carts.Snapshot(owner)
	if c.Empty() {
		return nil, httperr.ErrBusiness("empty_cart")
	}

	date, tm := strings.TrimSpace(in.Date), strings.TrimSpace(in.Time)
	if date == "" || tm == "" {
		return nil, httperr.ErrBusiness("missing_date_time")
	}
	if err := s.picker.Available(owner, date, tm); err != nil {
		return nil, err
	}

	method, err := payment.ParseMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if in.BarberID == 0 {
		return nil, httperr.ErrBusiness("missing_barber")
	}
	barber, ok := catalog.FindBarber(in.BarberID)
	if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.Available {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	quote, err := payment.NewQuote(c.Total(), in.DiscountCode)
	if err != nil {
		return nil, err
	}

	if in.AppointmentID != "" {
		ap, err := s.update.Execute(ctx, owner, in.AppointmentID, ucAppointment.UpdateInput{
			Date:          date,
			Time:          tm,
			Items:         c.Items,
			TotalAmount:   quote.Final,
			PaymentMethod: string(method),
			Barber:        barber.Name,
		})
		if err != nil {
			return nil, err
		}
		s.carts.Clear(owner)
		return &Result{Status: StatusUpdated, Appointment: ap}, nil
	}

	shopID := in.ShopID
	if shopID == 0 {
		shopID = c.ShopID
	}
	shop, _ := catalog.ShopOrDefault(shopID)

	sess := &session{
		id:        uuid.NewString(),
		owner:     owner,
		shop:      shop,
		date:      date,
		time:      tm,
		method:    method,
		barber:    barber,
		items:     c.Items,
		quote:     quote,
		createdAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	if method.RequiresTransfer() {
		info := payment.Transfer(date, tm, quote.Final)
		sess.transfer = &info
		sess.state = StateAwaitingPayment
		s.startQR(sess)
	} else {
		sess.state = StateConfirmed
		s.startSuccess(sess)
	}
	v := sess.view()
	s.mu.Unlock()

	s.carts.Clear(owner)
	s.metrics.SessionOpened()
	s.log.Info("checkout session opened",
		zap.String("session", sess.id),
		zap.String("owner", owner),
		zap.String("method", string(method)),
		zap.Int64("amount", quote.Final),
	)

	return &Result{Status: string(v.Status), Session: &v}, nil
}

func (s *Service) Get(owner, id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(owner, id)
	if err != nil {
		return View{}, err
	}
	return sess.view(), nil
}

// Confirm marks a QR payment as received and starts the success redirect.
func (s *Service) Confirm(owner, id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(owner, id)
	if err != nil {
		return View{}, err
	}
	if sess.state != StateAwaitingPayment {
		return View{}, httperr.ErrBusiness("invalid_state")
	}
	// lost the race against expiry
	if !sess.timer.Stop() {
		return View{}, httperr.ErrBusiness("invalid_state")
	}

	sess.state = StateConfirmed
	s.startSuccess(sess)
	return sess.view(), nil
}

func (s *Service) Cancel(owner, id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(owner, id)
	if err != nil {
		return View{}, err
	}
	if sess.state != StateAwaitingPayment {
		return View{}, httperr.ErrBusiness("invalid_state")
	}
	if !sess.timer.Stop() {
		return View{}, httperr.ErrBusiness("invalid_state")
	}

	s.finish(sess, StateCanceled)
	return sess.view(), nil
}

// Shutdown stops every pending countdown. Sessions still in flight are lost.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.timer != nil {
			sess.timer.Stop()
		}
	}
}

// ===============================
// internals (s.mu held unless noted)
// ===============================

func (s *Service) lookup(owner, id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok || sess.owner != owner {
		return nil, httperr.ErrBusiness("session_not_found")
	}
	return sess, nil
}

func (s *Service) startQR(sess *session) {
	id := sess.id
	sess.timerKind = TimerQR
	sess.timer = countdown.Start(s.cfg.QRSeconds, s.cfg.Tick, func() { s.expire(id) })
}

func (s *Service) startSuccess(sess *session) {
	id := sess.id
	sess.timerKind = TimerSuccess
	sess.timer = countdown.Start(s.cfg.SuccessSeconds, s.cfg.Tick, func() { s.commit(id) })
}

// expire runs on the countdown goroutine; it takes s.mu itself.
func (s *Service) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.state != StateAwaitingPayment {
		return
	}
	s.finish(sess, StateExpired)
	s.log.Info("checkout session expired", zap.String("session", id))
}

// commit runs on the countdown goroutine; it takes s.mu itself and releases
// it while the appointment is written.
func (s *Service) commit(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok || sess.state != StateConfirmed {
		s.mu.Unlock()
		return
	}
	owner := sess.owner
	in := ucAppointment.CreateInput{
		Shop:          sess.shop,
		Date:          sess.date,
		Time:          sess.time,
		Items:         sess.items,
		TotalAmount:   sess.quote.Final,
		PaymentMethod: string(sess.method),
		Barber:        sess.barber.Name,
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ap, err := s.create.Execute(ctx, owner, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Error("booking commit failed", zap.String("session", id), zap.Error(err))
		s.finish(sess, StateFailed)
		return
	}

	sess.appointmentID = ap.ID
	s.finish(sess, StateCompleted)
	s.metrics.Booked(string(sess.method))
	s.log.Info("booking committed",
		zap.String("session", id),
		zap.String("appointment", ap.ID),
	)
}

func (s *Service) finish(sess *session, state State) {
	sess.state = state
	s.metrics.SessionClosed(string(state))

	id := sess.id
	time.AfterFunc(s.cfg.Retention, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.sessions, id)
	})
}
