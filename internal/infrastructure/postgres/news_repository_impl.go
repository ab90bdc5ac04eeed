package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkovalev/news-api/internal/domain/entity"
	"github.com/dkovalev/news-api/internal/domain/repository"
)

type NewsRepository struct {
	pool *pgxpool.Pool
}

func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	n := &entity.News{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, content, created_at, user_id
		FROM news
		WHERE id = $1
	`, id)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (r *NewsRepository) Create(ctx context.Context, n *entity.News) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO news (title, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, n.Title, n.Content, n.UserID)
	return row.Scan(&n.ID, &n.CreatedAt)
}

// UpdatePartial mirrors UserRepository.UpdatePartial: read FOR UPDATE,
// apply, write back. created_at is not in the UPDATE column list, so it
// stays immutable no matter what apply does.
func (r *NewsRepository) UpdatePartial(ctx context.Context, id int64, apply func(*entity.News) error) (*entity.News, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	n := &entity.News{}
	row := tx.QueryRow(ctx, `
		SELECT id, title, content, created_at, user_id
		FROM news
		WHERE id = $1
		FOR UPDATE
	`, id)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := apply(n); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE news
		SET title = $1, content = $2, user_id = $3
		WHERE id = $4
	`, n.Title, n.Content, n.UserID, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.NewsRepository = (*NewsRepository)(nil)
