package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/cart"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CreateInput struct {
	Shop          catalog.Shop
	Date          string
	Time          string
	Items         []cart.Item
	TotalAmount   int64
	PaymentMethod string
	Barber        string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

// Execute records a finished booking at the head of the owner's list.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	owner string,
	in CreateInput,
) (*domain.Appointment, error) {

	now := uc.now()
	ap := domain.Appointment{
		ID:             domain.NewID(now),
		Date:           in.Date,
		Time:           in.Time,
		BarberShop:     in.Shop.Name,
		ShopID:         in.Shop.ID,
		Address:        in.Shop.Address,
		Services:       cart.Describe(in.Items),
		ServicesDetail: in.Items,
		Image:          in.Shop.Image,
		RemindMe:       true,
		Status:         domain.InitialStatus(),
		TotalAmount:    in.TotalAmount,
		PaymentMethod:  in.PaymentMethod,
		Barber:         in.Barber,
		CreatedAt:      now,
	}

	err := uc.repo.Update(ctx, owner, func(list []domain.Appointment) ([]domain.Appointment, error) {
		// ids come from the millisecond clock; bump on a same-instant collision
		for domain.Find(list, ap.ID) >= 0 {
			now = now.Add(time.Millisecond)
			ap.ID = domain.NewID(now)
		}
		return domain.Prepend(list, ap), nil
	})
	if err != nil {
		return nil, err
	}

	dispatch(uc.audit, owner, audit.ActionAppointmentCreated, &ap)
	return &ap, nil
}
