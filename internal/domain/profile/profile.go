package profile

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type Profile struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Gender  string `json:"gender"`
	Avatar  string `json:"avatar,omitempty"`
}

type Repository interface {
	Load(ctx context.Context, owner string) (Profile, error)
	Save(ctx context.Context, owner string, p Profile) error
	Update(ctx context.Context, owner string, fn func(Profile) (Profile, error)) (Profile, error)
}

// Default is shown until the owner saves their own details.
func Default() Profile {
	return Profile{
		Name:    "Trần Hùng",
		Phone:   "033351059",
		Email:   "HungDeptrai@gmail.com",
		Address: "97 Man Thiện, Lê Văn Việt, TP.HCM",
		Gender:  "Nam",
	}
}

// Patch carries only the fields the client sent.
type Patch struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone" binding:"omitempty,phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
	Gender  *string `json:"gender" binding:"omitempty,oneof=Nam Nữ Khác"`
}

func (p Patch) Apply(cur Profile) (Profile, error) {
	if err := validators.Struct(p); err != nil {
		return cur, err
	}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return cur, httperr.ErrBusiness("invalid_name")
		}
		cur.Name = name
	}
	if p.Phone != nil {
		cur.Phone = *p.Phone
	}
	if p.Email != nil {
		cur.Email = *p.Email
	}
	if p.Address != nil {
		cur.Address = strings.TrimSpace(*p.Address)
	}
	if p.Gender != nil {
		cur.Gender = *p.Gender
	}
	return cur, nil
}
