package repository

import (
	"context"

	"github.com/dkovalev/news-api/internal/domain/entity"
)

// NewsRepository defines the interface for news persistence. Same contract
// shape as UserRepository; no uniqueness constraint, and CreatedAt is set
// only by Create.
type NewsRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.News, error)
	Create(ctx context.Context, n *entity.News) error
	UpdatePartial(ctx context.Context, id int64, apply func(*entity.News) error) (*entity.News, error)
	Delete(ctx context.Context, id int64) error
}
