package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Card struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Query struct {
	Action string
	Page   int
	Limit  int
}

// Normalize clamps paging to sane bounds.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

type Service struct {
	store audit.Store
}

func NewService(store audit.Store) *Service {
	return &Service{store: store}
}

// List turns the owner's audit trail into notification cards, newest first.
func (s *Service) List(ctx context.Context, owner string, q Query) ([]Card, int64, error) {
	q = q.Normalize()
	if q.Action != "" && !known(q.Action) {
		return nil, 0, httperr.ErrBusiness("invalid_action")
	}

	logs, total, err := s.store.List(ctx, owner, audit.Filter{
		Action: q.Action,
		Limit:  q.Limit,
		Offset: (q.Page - 1) * q.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	cards := make([]Card, 0, len(logs))
	for _, l := range logs {
		cards = append(cards, Render(l))
	}
	return cards, total, nil
}

type meta struct {
	BarberShop string   `json:"barber_shop"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Name       string   `json:"name"`
	Rating     int      `json:"rating"`
	Fields     []string `json:"fields"`
}

func known(action string) bool {
	switch action {
	case audit.ActionAppointmentCreated,
		audit.ActionAppointmentUpdated,
		audit.ActionAppointmentCanceled,
		audit.ActionAppointmentRebooked,
		audit.ActionAppointmentCompleted,
		audit.ActionFavoriteAdded,
		audit.ActionFavoriteRemoved,
		audit.ActionReviewCreated,
		audit.ActionProfileUpdated:
		return true
	}
	return false
}

// Render maps one audit row to its Vietnamese card. Unreadable metadata
// still yields a card, just with less detail.
func Render(l models.AuditLog) Card {
	var m meta
	if l.Metadata != "" {
		_ = json.Unmarshal([]byte(l.Metadata), &m)
	}

	c := Card{ID: l.ID, Action: l.Action, CreatedAt: l.CreatedAt}

	switch l.Action {
	case audit.ActionAppointmentCreated:
		c.Title = "Đặt lịch thành công"
		c.Content = fmt.Sprintf("Lịch hẹn tại %s lúc %s ngày %s đã được xác nhận.", m.BarberShop, m.Time, m.Date)
	case audit.ActionAppointmentUpdated:
		c.Title = "Lịch hẹn đã được cập nhật"
		c.Content = fmt.Sprintf("Lịch hẹn tại %s đã đổi sang %s ngày %s.", m.BarberShop, m.Time, m.Date)
	case audit.ActionAppointmentCanceled:
		c.Title = "Đã hủy lịch hẹn"
		c.Content = fmt.Sprintf("Lịch hẹn tại %s lúc %s ngày %s đã bị hủy.", m.BarberShop, m.Time, m.Date)
	case audit.ActionAppointmentRebooked:
		c.Title = "Đặt lại lịch hẹn"
		c.Content = fmt.Sprintf("Lịch hẹn tại %s đã được đặt lại.", m.BarberShop)
	case audit.ActionAppointmentCompleted:
		c.Title = "Hoàn thành lịch hẹn"
		c.Content = fmt.Sprintf("Cảm ơn bạn đã sử dụng dịch vụ tại %s. Hãy để lại đánh giá nhé!", m.BarberShop)
	case audit.ActionFavoriteAdded:
		c.Title = "Đã thêm vào yêu thích"
		c.Content = fmt.Sprintf("%s đã được thêm vào danh sách yêu thích.", m.Name)
	case audit.ActionFavoriteRemoved:
		c.Title = "Đã xóa khỏi yêu thích"
		c.Content = fmt.Sprintf("%s đã bị xóa khỏi danh sách yêu thích.", m.Name)
	case audit.ActionReviewCreated:
		c.Title = "Cảm ơn đánh giá của bạn"
		c.Content = fmt.Sprintf("Bạn đã đánh giá %s %d sao.", m.Name, m.Rating)
	case audit.ActionProfileUpdated:
		c.Title = "Cập nhật hồ sơ"
		c.Content = "Thông tin cá nhân của bạn đã được cập nhật."
	default:
		c.Title = l.Action
	}
	return c
}
