package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dkovalev/news-api/internal/domain/entity"
	"github.com/dkovalev/news-api/internal/domain/repository"
)

type NewsService struct {
	Repo   repository.NewsRepository
	Logger *logrus.Logger
}

func NewNewsService(repo repository.NewsRepository, logger *logrus.Logger) *NewsService {
	return &NewsService{Repo: repo, Logger: logger}
}

type CreateNewsInput struct {
	Title   string
	Content string
	// UserID is the author resolved from the optional identity middleware;
	// nil leaves the post unowned.
	UserID *int64
}

type PatchNewsInput struct {
	Title   *string
	Content *string
}

func (s *NewsService) Get(ctx context.Context, id int64) (*entity.News, error) {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *NewsService) Create(ctx context.Context, in CreateNewsInput) (*entity.News, error) {
	n := &entity.News{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	s.Logger.WithField("news_id", n.ID).Info("news created")
	return n, nil
}

func (s *NewsService) Patch(ctx context.Context, id int64, in PatchNewsInput) (*entity.News, error) {
	n, err := s.Repo.UpdatePartial(ctx, id, func(n *entity.News) error {
		if in.Title != nil {
			n.Title = *in.Title
		}
		if in.Content != nil {
			n.Content = *in.Content
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNewsNotFound
		}
		return err
	}
	s.Logger.WithField("news_id", id).Info("news deleted")
	return nil
}
