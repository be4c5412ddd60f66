package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type recordingStore struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

func (s *recordingStore) Create(_ context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, *log)
	return nil
}

func (s *recordingStore) List(context.Context, string, Filter) ([]models.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs, int64(len(s.logs)), nil
}

func (s *recordingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs)
}

func TestDispatchWritesInBackground(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store), zap.NewNop())

	d.Dispatch(Event{
		OwnerID:  "7",
		Action:   ActionFavoriteAdded,
		Entity:   "shop",
		EntityID: "4",
		Metadata: map[string]any{"name": "Urban Trim Studio"},
	})

	assert.Eventually(t, func() bool { return store.count() == 1 }, time.Second, time.Millisecond)

	store.mu.Lock()
	got := store.logs[0]
	store.mu.Unlock()
	assert.Equal(t, "7", got.OwnerID)
	assert.JSONEq(t, `{"name":"Urban Trim Studio"}`, got.Metadata)
}

func TestCloseDrainsAndIgnoresLateEvents(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store), zap.NewNop())

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{OwnerID: "1", Action: ActionProfileUpdated})
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	assert.Equal(t, 10, store.count())

	d.Dispatch(Event{OwnerID: "1", Action: ActionProfileUpdated})
	require.NoError(t, d.Close(ctx))
	assert.Equal(t, 10, store.count())
}
