package profile

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/profile"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

func newService(t *testing.T) *Service {
	t.Helper()

	d := audit.NewDispatcher(audit.New(memory.NewAuditStore()), zap.NewNop())
	t.Cleanup(func() { d.Close(context.Background()) })

	m := media.NewService(media.NewProcessor(), media.NewMemoryUploader("/media"))
	return NewService(repository.NewProfileSlotRepository(storage.NewMemoryStore()), m, d)
}

func TestGetDefaultsUntilSaved(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	p, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Default(), p)

	require.NoError(t, s.Init(ctx, "1", "Minh", "minh@gmail.com"))
	p, err = s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Minh", p.Name)
	assert.Equal(t, "minh@gmail.com", p.Email)
}

func TestUpdateRejectsInvalidAndKeepsStored(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	bad := "12"

	_, err := s.Update(ctx, "1", domain.Patch{Phone: &bad})
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))

	good := "0888618681"
	p, err := s.Update(ctx, "1", domain.Patch{Phone: &good})
	require.NoError(t, err)
	assert.Equal(t, good, p.Phone)
}

func TestSetAvatar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	p, err := newService(t).SetAvatar(context.Background(), "7", &buf)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.Avatar, "/media/avatars/7/"))
}
