package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AuditStore struct {
	mu     sync.RWMutex
	nextID uint
	rows   []models.AuditLog
}

func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

var _ audit.Store = (*AuditStore)(nil)

func (s *AuditStore) Create(_ context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	log.ID = s.nextID
	s.rows = append(s.rows, *log)
	return nil
}

func (s *AuditStore) List(_ context.Context, owner string, f audit.Filter) ([]models.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.AuditLog, 0)
	for _, l := range s.rows {
		if l.OwnerID != owner {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		matched = append(matched, l)
	}

	// ids break ties between rows written in the same instant
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}
