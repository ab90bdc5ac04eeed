package repository

import (
	"context"

	"github.com/dkovalev/news-api/internal/domain/entity"
)

// UserRepository defines the interface for user persistence.
//
// UpdatePartial runs apply on the stored row inside one transaction so that
// concurrent patches cannot interleave between the read and the write. The
// apply callback receives the current row and mutates only the fields it was
// given; ID is immutable.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	UpdatePartial(ctx context.Context, id int64, apply func(*entity.User) error) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
