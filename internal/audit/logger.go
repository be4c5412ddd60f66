package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Filter struct {
	Action string
	Entity string
	Limit  int
	Offset int
}

// Store persists audit rows. List returns one page, newest first, plus the
// total matching count.
type Store interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, owner string, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(
	ctx context.Context,
	ownerID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		OwnerID:   ownerID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	}

	return l.store.Create(ctx, &log)
}
