package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/cart"
	"github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	ucCart "github.com/BruksfildServices01/barber-booking/internal/usecase/cart"
)

const (
	unknownPrice    = "Giá không xác định"
	unknownDuration = "30 phút"
)

// EditDraft pre-fills the payment screen for changing an existing booking.
type EditDraft struct {
	CartItems            []cart.Item  `json:"cartItems"`
	TotalPrice           int64        `json:"totalPrice"`
	ShopData             catalog.Shop `json:"shopData"`
	InitialDate          string       `json:"initialDate"`
	InitialTime          string       `json:"initialTime"`
	InitialPaymentMethod string       `json:"initialPaymentMethod"`
	IsEditing            bool         `json:"isEditing"`
	AppointmentID        string       `json:"appointmentId"`
}

type GetEditDraft struct {
	repo  domain.Repository
	carts *ucCart.Service
}

func NewGetEditDraft(repo domain.Repository, carts *ucCart.Service) *GetEditDraft {
	return &GetEditDraft{repo: repo, carts: carts}
}

// Execute builds the draft and loads its items into the owner's cart.
func (uc *GetEditDraft) Execute(
	ctx context.Context,
	owner string,
	id string,
) (*EditDraft, error) {

	list, err := uc.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	i := domain.Find(list, id)
	if i < 0 {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	ap := list[i]

	items := ap.ServicesDetail
	if len(items) == 0 {
		items = itemsFromDescription(ap.Services, ap.Image)
	}

	method := ap.PaymentMethod
	if method == "" {
		method = string(payment.MethodCash)
	}

	shop := shopFor(ap)
	uc.carts.Load(owner, shop.ID, items)

	return &EditDraft{
		CartItems:            items,
		TotalPrice:           ap.TotalAmount,
		ShopData:             shop,
		InitialDate:          ap.Date,
		InitialTime:          ap.Time,
		InitialPaymentMethod: method,
		IsEditing:            true,
		AppointmentID:        ap.ID,
	}, nil
}

// itemsFromDescription rebuilds placeholder items from "A x2, B" style text.
func itemsFromDescription(services, image string) []cart.Item {
	out := make([]cart.Item, 0)
	for _, name := range strings.Split(services, ", ") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		out = append(out, cart.Item{
			Service: catalog.Service{
				Name:       name,
				Price:      unknownPrice,
				PriceValue: 0,
				Duration:   unknownDuration,
				Image:      image,
			},
			Quantity: 1,
		})
	}
	return out
}

func shopFor(ap domain.Appointment) catalog.Shop {
	if s, ok := catalog.FindShop(ap.ShopID); ok {
		return s
	}
	for _, s := range catalog.Shops() {
		if s.Name == ap.BarberShop {
			return s
		}
	}

	s, _ := catalog.ShopOrDefault(0)
	s.Name = ap.BarberShop
	s.Address = ap.Address
	if ap.Image != "" {
		s.Image = ap.Image
	}
	return s
}
