package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dkovalev/news-api/internal/domain/entity"
	"github.com/dkovalev/news-api/internal/domain/repository"
	"github.com/dkovalev/news-api/pkg/helpers"
)

// UserService orchestrates user store access: hashing on the way in,
// mapping store conditions to the application error taxonomy on the way
// out.
type UserService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

type PatchUserInput struct {
	Username *string
	Password *string
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user created")
	return u, nil
}

// Patch overwrites only the supplied fields. The merge is field-by-field
// over the validated input, never over raw request keys, and runs inside
// the repository's transaction scope.
func (s *UserService) Patch(ctx context.Context, id int64, in PatchUserInput) (*entity.User, error) {
	u, err := s.Repo.UpdatePartial(ctx, id, func(u *entity.User) error {
		if in.Username != nil {
			u.Username = *in.Username
		}
		if in.Password != nil {
			hash, err := helpers.HashPassword(*in.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.Logger.WithField("user_id", id).Info("user deleted")
	return nil
}
