package service

import (
	"context"

	"fitplan/internal/domain/entity"
)

// CatalogCache caches the persisted exercise catalog.
type CatalogCache interface {
	// GetExercises reports ok=false on a miss.
	GetExercises(ctx context.Context) (exercises []*entity.Exercise, ok bool, err error)

	SetExercises(ctx context.Context, exercises []*entity.Exercise) error
}
