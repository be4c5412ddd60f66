package memory

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/account"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AccountRepository struct {
	mu      sync.RWMutex
	nextID  uint
	byEmail map[string]models.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byEmail: make(map[string]models.Account)}
}

var _ domain.Repository = (*AccountRepository)(nil)

func (r *AccountRepository) Create(_ context.Context, a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[a.Email]; ok {
		return domain.ErrEmailTaken
	}

	r.nextID++
	now := time.Now()
	a.ID = r.nextID
	a.CreatedAt = now
	a.UpdatedAt = now
	r.byEmail[a.Email] = *a
	return nil
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}
