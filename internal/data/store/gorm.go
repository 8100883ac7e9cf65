package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// RecordRow is the single table every gorm-backed Table writes to.
type RecordRow struct {
	ID        string         `gorm:"column:id;primaryKey;size:36"`
	Kind      string         `gorm:"column:kind;size:64;not null;index:idx_records_kind_seq,priority:1"`
	Seq       int64          `gorm:"column:seq;not null;index:idx_records_kind_seq,priority:2"`
	Payload   datatypes.JSON `gorm:"column:payload;not null"`
	CreatedAt time.Time      `gorm:"column:created_at;not null"`
}

func (RecordRow) TableName() string { return "records" }

type gormTable[T Record[T]] struct {
	db   *gorm.DB
	kind string
	log  *logger.Logger

	// mu serializes inserts so seq stays strictly increasing per kind.
	mu sync.Mutex
}

// NewGormTable returns a Table persisted in the records table of db. The
// caller is responsible for migrating RecordRow.
func NewGormTable[T Record[T]](db *gorm.DB, kind string, baseLog *logger.Logger) Table[T] {
	return &gormTable[T]{
		db:   db,
		kind: kind,
		log:  baseLog.With("table", kind, "driver", "gorm"),
	}
}

func (t *gormTable[T]) Insert(ctx context.Context, rec T) (T, error) {
	var zero T
	stored := rec.WithID(uuid.New())
	payload, err := json.Marshal(stored)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", t.kind, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	err = t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int64
		if err := tx.Model(&RecordRow{}).
			Where("kind = ?", t.kind).
			Select("COALESCE(MAX(seq), 0) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		return tx.Create(&RecordRow{
			ID:        stored.RecordID().String(),
			Kind:      t.kind,
			Seq:       next,
			Payload:   datatypes.JSON(payload),
			CreatedAt: time.Now().UTC(),
		}).Error
	})
	if err != nil {
		t.log.Error("insert failed", "error", err)
		return zero, fmt.Errorf("insert %s: %w", t.kind, err)
	}
	return stored, nil
}

func (t *gormTable[T]) GetByID(ctx context.Context, id uuid.UUID) (T, bool, error) {
	var zero T
	var row RecordRow
	err := t.db.WithContext(ctx).
		Where("kind = ? AND id = ?", t.kind, id.String()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, false, nil
		}
		return zero, false, err
	}
	rec, err := t.decode(row)
	if err != nil {
		return zero, false, err
	}
	return rec, true, nil
}

func (t *gormTable[T]) All(ctx context.Context) ([]T, error) {
	var rows []RecordRow
	if err := t.db.WithContext(ctx).
		Where("kind = ?", t.kind).
		Order("seq ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		rec, err := t.decode(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (t *gormTable[T]) Len(ctx context.Context) (int, error) {
	var n int64
	if err := t.db.WithContext(ctx).
		Model(&RecordRow{}).
		Where("kind = ?", t.kind).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (t *gormTable[T]) decode(row RecordRow) (T, error) {
	var rec T
	if err := json.Unmarshal(row.Payload, &rec); err != nil {
		return rec, fmt.Errorf("decode %s %s: %w", t.kind, row.ID, err)
	}
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return rec, fmt.Errorf("decode %s id %q: %w", t.kind, row.ID, err)
	}
	return rec.WithID(id), nil
}
