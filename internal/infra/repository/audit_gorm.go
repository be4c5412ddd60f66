package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AuditGormStore struct {
	db *gorm.DB
}

func NewAuditGormStore(db *gorm.DB) *AuditGormStore {
	return &AuditGormStore{db: db}
}

var _ audit.Store = (*AuditGormStore)(nil)

func (r *AuditGormStore) Create(ctx context.Context, log *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *AuditGormStore) List(
	ctx context.Context,
	owner string,
	f audit.Filter,
) ([]models.AuditLog, int64, error) {

	// --------------------------------------------------
	// Query base (always scoped to the owner)
	// --------------------------------------------------

	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("owner_id = ?", owner)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
