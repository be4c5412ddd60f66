package backend

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/domain/account"
	"github.com/BruksfildServices01/barber-booking/internal/domain/review"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/infra/redisstore"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

// MediaPath is where the memory uploader's objects are served.
const MediaPath = "/media"

// Backend bundles the persistence and media adapters picked by config.
type Backend struct {
	Slots    storage.Store
	Accounts account.Repository
	Reviews  review.Repository
	Audit    audit.Store
	Uploader media.Uploader

	// non-nil only with MEDIA_DRIVER=memory
	Objects *media.MemoryUploader

	closers []func() error
}

// Open builds the backend for cfg. Postgres always holds accounts, reviews
// and the audit trail unless everything runs in memory; redis may take over
// the per-owner slots.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Backend, error) {
	b := &Backend{}

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		b.useMemory()

	case config.StorageDriverPostgres, config.StorageDriverRedis:
		gdb := db.NewDB(cfg, log)
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, sqlDB.Close)

		b.Slots = repository.NewSlotGormStore(gdb)
		b.Accounts = repository.NewAccountGormRepository(gdb)
		b.Reviews = repository.NewReviewGormRepository(gdb)
		b.Audit = repository.NewAuditGormStore(gdb)

		if cfg.StorageDriver == config.StorageDriverRedis {
			rs, err := redisstore.Connect(ctx, cfg)
			if err != nil {
				b.Close()
				return nil, err
			}
			b.closers = append(b.closers, rs.Close)
			b.Slots = rs
		}

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	switch cfg.MediaDriver {
	case config.MediaDriverS3:
		b.Uploader = media.NewS3Uploader(cfg)
	case config.MediaDriverMemory, "":
		b.Objects = media.NewMemoryUploader(MediaPath)
		b.Uploader = b.Objects
	default:
		b.Close()
		return nil, fmt.Errorf("unknown media driver %q", cfg.MediaDriver)
	}

	log.Info("backend ready",
		zap.String("storage", cfg.StorageDriver),
		zap.String("media", cfg.MediaDriver),
	)
	return b, nil
}

// Memory is a fully in-process backend for development and tests.
func Memory() *Backend {
	b := &Backend{}
	b.useMemory()
	b.Objects = media.NewMemoryUploader(MediaPath)
	b.Uploader = b.Objects
	return b
}

func (b *Backend) useMemory() {
	b.Slots = storage.NewMemoryStore()
	b.Accounts = memory.NewAccountRepository()
	b.Reviews = memory.NewReviewRepository()
	b.Audit = memory.NewAuditStore()
}

func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
