package profile

import (
	"context"
	"io"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/profile"
	"github.com/BruksfildServices01/barber-booking/internal/media"
)

type Service struct {
	repo  domain.Repository
	media *media.Service
	audit *audit.Dispatcher
}

func NewService(repo domain.Repository, media *media.Service, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, media: media, audit: audit}
}

func (s *Service) Get(ctx context.Context, owner string) (domain.Profile, error) {
	return s.repo.Load(ctx, owner)
}

func (s *Service) Update(ctx context.Context, owner string, patch domain.Patch) (domain.Profile, error) {
	p, err := s.repo.Update(ctx, owner, patch.Apply)
	if err != nil {
		return domain.Profile{}, err
	}

	s.dispatch(owner, map[string]any{"fields": patchedFields(patch)})
	return p, nil
}

// Init seeds a new account's profile from its registration details.
func (s *Service) Init(ctx context.Context, owner, name, email string) error {
	p := domain.Default()
	p.Name = name
	p.Email = email
	return s.repo.Save(ctx, owner, p)
}

// SetAvatar converts the upload to WebP, stores it, and points the profile
// at the new URL.
func (s *Service) SetAvatar(ctx context.Context, owner string, r io.Reader) (domain.Profile, error) {
	url, err := s.media.Store(ctx, "avatars/"+owner, r)
	if err != nil {
		return domain.Profile{}, err
	}

	p, err := s.repo.Update(ctx, owner, func(p domain.Profile) (domain.Profile, error) {
		p.Avatar = url
		return p, nil
	})
	if err != nil {
		return domain.Profile{}, err
	}

	s.dispatch(owner, map[string]any{"fields": []string{"avatar"}})
	return p, nil
}

func (s *Service) dispatch(owner string, meta map[string]any) {
	s.audit.Dispatch(audit.Event{
		OwnerID:  owner,
		Action:   audit.ActionProfileUpdated,
		Entity:   "profile",
		EntityID: owner,
		Metadata: meta,
	})
}

func patchedFields(p domain.Patch) []string {
	var out []string
	if p.Name != nil {
		out = append(out, "name")
	}
	if p.Phone != nil {
		out = append(out, "phone")
	}
	if p.Email != nil {
		out = append(out, "email")
	}
	if p.Address != nil {
		out = append(out, "address")
	}
	if p.Gender != nil {
		out = append(out, "gender")
	}
	return out
}
