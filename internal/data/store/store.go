// Package store holds the typed record tables behind every service.
//
// A Table assigns identifiers on insert and hands records back in insertion
// order. Two backends exist: an in-process map and a gorm-backed table that
// keeps each record as a JSON payload.
package store

import (
	"context"

	"github.com/google/uuid"
)

// Record is implemented by the value types stored in a Table. WithID returns
// a copy carrying the identifier the table assigned.
type Record[T any] interface {
	RecordID() uuid.UUID
	WithID(id uuid.UUID) T
}

type Table[T Record[T]] interface {
	// Insert ignores any identifier already on rec and returns the stored copy.
	Insert(ctx context.Context, rec T) (T, error)
	GetByID(ctx context.Context, id uuid.UUID) (T, bool, error)
	// All returns every record in insertion order. The slice is never nil.
	All(ctx context.Context) ([]T, error)
	Len(ctx context.Context) (int, error)
}

// Filter keeps the records for which keep returns true, preserving order.
func Filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
