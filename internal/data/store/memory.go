package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// memoryTable never returns an error.
type memoryTable[T Record[T]] struct {
	mu    sync.RWMutex
	rows  map[uuid.UUID]T
	order []uuid.UUID
	log   *logger.Logger
}

// NewMemoryTable returns a Table that lives for the life of the process.
func NewMemoryTable[T Record[T]](kind string, baseLog *logger.Logger) Table[T] {
	return &memoryTable[T]{
		rows: make(map[uuid.UUID]T),
		log:  baseLog.With("table", kind, "driver", "memory"),
	}
}

func (t *memoryTable[T]) Insert(_ context.Context, rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := uuid.New()
	for _, taken := t.rows[id]; taken; _, taken = t.rows[id] {
		id = uuid.New()
	}
	stored := rec.WithID(id)
	t.rows[id] = stored
	t.order = append(t.order, id)
	t.log.Debug("record inserted", "id", id)
	return stored, nil
}

func (t *memoryTable[T]) GetByID(_ context.Context, id uuid.UUID) (T, bool, error) {
	var zero T
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[id]
	if !ok {
		return zero, false, nil
	}
	return rec, true, nil
}

func (t *memoryTable[T]) All(_ context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out, nil
}

func (t *memoryTable[T]) Len(_ context.Context) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order), nil
}
