package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

type SlotGormStore struct {
	db *gorm.DB
}

func NewSlotGormStore(db *gorm.DB) *SlotGormStore {
	return &SlotGormStore{db: db}
}

var _ storage.Store = (*SlotGormStore)(nil)

func (r *SlotGormStore) Get(ctx context.Context, owner, key string) (string, error) {
	var slot models.StorageSlot
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND slot_key = ?", owner, key).
		Take(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return slot.Value, nil
}

func (r *SlotGormStore) Put(ctx context.Context, owner, key, value string) error {
	slot := models.StorageSlot{
		OwnerID:   owner,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&slot).Error
}

func (r *SlotGormStore) Delete(ctx context.Context, owner, key string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND slot_key = ?", owner, key).
		Delete(&models.StorageSlot{}).Error
}
