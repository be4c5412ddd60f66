package appointment

import "context"

// Repository persists an owner's whole appointment list as one unit. Update
// runs fn on the current list and saves its result atomically per owner.
type Repository interface {
	Load(ctx context.Context, owner string) ([]Appointment, error)
	Save(ctx context.Context, owner string, list []Appointment) error
	Update(ctx context.Context, owner string, fn func([]Appointment) ([]Appointment, error)) error
}
