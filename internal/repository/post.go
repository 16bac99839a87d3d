package repository

import (
	"context"

	"postboard/internal/domain"
)

// PostRepository exposes persistence operations for Post aggregates. Reads
// eagerly attach the owning user. Get and the mutating operations wrap
// domain.ErrNotFound when the id does not resolve.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
}
