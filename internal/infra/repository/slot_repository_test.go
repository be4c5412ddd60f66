package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/favorite"
	"github.com/BruksfildServices01/barber-booking/internal/domain/profile"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

func TestAppointmentSlotRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewAppointmentSlotRepository(store)

	empty, err := repo.Load(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	created := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	list := []appointment.Appointment{{ID: "1760950000123", Status: appointment.StatusUpcoming, CreatedAt: created}}
	require.NoError(t, repo.Save(ctx, "1", list))

	got, err := repo.Load(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, created.Equal(got[0].CreatedAt))
}

func TestCorruptSlotsFallBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "1", storage.KeyAppointments, "not-json"))
	require.NoError(t, store.Put(ctx, "1", storage.KeyFavorites, `{"id":1}`))

	apps, err := NewAppointmentSlotRepository(store).Load(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, apps)

	favs, err := NewFavoriteSlotRepository(store).Load(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestNullSlotsFallBack(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	for _, key := range []string{storage.KeyUser, storage.KeyFavorites, storage.KeyAppointments} {
		require.NoError(t, store.Put(ctx, "1", key, " null "))
	}

	p, err := NewProfileSlotRepository(store).Load(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, profile.Default(), p)

	favs, err := NewFavoriteSlotRepository(store).Load(ctx, "1")
	require.NoError(t, err)
	assert.NotNil(t, favs)
	assert.Empty(t, favs)

	apps, err := NewAppointmentSlotRepository(store).Load(ctx, "1")
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestFavoriteSlotRepositoryStoresShopFields(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewFavoriteSlotRepository(store)

	shop, _ := catalog.FindShop(4)
	require.NoError(t, repo.Save(ctx, "1", []favorite.Favorite{{Shop: shop, AddedAt: time.Now()}}))

	raw, err := store.Get(ctx, "1", storage.KeyFavorites)
	require.NoError(t, err)
	assert.Contains(t, raw, `"name":"Urban Trim Studio"`)
	assert.Contains(t, raw, `"addedAt"`)
}
