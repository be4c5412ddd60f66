package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/account"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestAccountRepositoryRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	a := &models.Account{Name: "Hùng", Email: "hung@gmail.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, a))
	assert.Equal(t, uint(1), a.ID)

	err := repo.Create(ctx, &models.Account{Email: "hung@gmail.com"})
	assert.ErrorIs(t, err, account.ErrEmailTaken)

	_, err = repo.FindByEmail(ctx, "nobody@gmail.com")
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestReviewRepositoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository()
	base := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.Review{ShopID: 1, Rating: 4, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &models.Review{ShopID: 2, Rating: 5, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &models.Review{ShopID: 1, Rating: 5, CreatedAt: base.Add(time.Hour)}))

	list, err := repo.ListByShop(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint(3), list[0].ID)
}

func TestAuditStorePaging(t *testing.T) {
	ctx := context.Background()
	s := NewAuditStore()
	base := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Create(ctx, &models.AuditLog{
			OwnerID:   "1",
			Action:    audit.ActionFavoriteAdded,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, s.Create(ctx, &models.AuditLog{OwnerID: "2", Action: audit.ActionFavoriteAdded}))
	require.NoError(t, s.Create(ctx, &models.AuditLog{OwnerID: "1", Action: audit.ActionProfileUpdated, CreatedAt: base}))

	page, total, err := s.List(ctx, "1", audit.Filter{Action: audit.ActionFavoriteAdded, Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, uint(4), page[0].ID)
	assert.Equal(t, uint(3), page[1].ID)

	empty, _, err := s.List(ctx, "1", audit.Filter{Offset: 50})
	require.NoError(t, err)
	assert.Empty(t, empty)
}
